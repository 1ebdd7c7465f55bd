// Package miniflux provides a client for the Miniflux feed reader HTTP API.
//
// The client is a thin request layer: it picks the authentication header,
// composes method, path and body, checks the response status where the
// endpoint documents one, and encodes or decodes JSON. Feed, category, entry
// and user records are passed through without validation.
//
// # Usage
//
// Create a client with an API token or with basic credentials:
//
//	client := miniflux.NewClient(
//		"https://reader.example.com",
//		miniflux.WithToken("your-api-token"),
//		miniflux.WithTimeout(10*time.Second),
//	)
//
//	ctx := context.Background()
//	feeds, err := client.Feeds(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// When both a token and a username/password pair are configured through
// [ClientConfig], the token wins.
//
// # Return conventions
//
// Endpoints keep the result shape the API documents:
//
//   - Read endpoints decode JSON into typed records and fail on any status
//     other than 200.
//   - Mutations such as UpdateEntries or DeleteCategory report success as a
//     bool, true only for the documented status code.
//   - UpdateFeed, RefreshFeed, RemoveFeed and Healthcheck return the drained
//     [Response] so callers can inspect the status themselves.
//
// # Error Handling
//
//   - TransportError: the request never produced a response
//   - UnexpectedStatusError: a status check failed
//   - MalformedResponseError: the body was not the JSON that was expected
//
// The client never retries and never logs the errors it returns.
package miniflux
