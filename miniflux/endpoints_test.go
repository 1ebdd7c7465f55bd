package miniflux

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/blang/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointRouting(t *testing.T) {
	ctx := context.Background()
	title := "Renamed"

	tests := []struct {
		name       string
		status     int
		body       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   string
	}{
		{
			name: "me", status: 200, body: `{"id":1,"username":"song940"}`,
			call:       func(c *Client) error { _, err := c.Me(ctx); return err },
			wantMethod: "GET", wantPath: "/v1/me",
		},
		{
			name: "feeds", status: 200, body: `[]`,
			call:       func(c *Client) error { _, err := c.Feeds(ctx); return err },
			wantMethod: "GET", wantPath: "/v1/feeds",
		},
		{
			name: "feed", status: 200, body: `{"id":42}`,
			call:       func(c *Client) error { _, err := c.Feed(ctx, 42); return err },
			wantMethod: "GET", wantPath: "/v1/feeds/42",
		},
		{
			name: "feed icon", status: 200, body: `{"id":3,"mime_type":"image/png","data":"image/png;base64,AA=="}`,
			call:       func(c *Client) error { _, err := c.FeedIcon(ctx, 42); return err },
			wantMethod: "GET", wantPath: "/v1/feeds/42/icon",
		},
		{
			name: "category feeds", status: 200, body: `[]`,
			call:       func(c *Client) error { _, err := c.CategoryFeeds(ctx, 40); return err },
			wantMethod: "GET", wantPath: "/v1/categories/40/feeds",
		},
		{
			name: "create feed", status: 201, body: `{"feed_id":9}`,
			call:       func(c *Client) error { _, err := c.CreateFeed(ctx, "https://example.com/feed", 3); return err },
			wantMethod: "POST", wantPath: "/v1/feeds",
			wantBody: `{"feed_url":"https://example.com/feed","category_id":3}`,
		},
		{
			name: "update feed", status: 201, body: `{}`,
			call: func(c *Client) error {
				_, err := c.UpdateFeed(ctx, 42, &FeedModificationRequest{Title: &title})
				return err
			},
			wantMethod: "PUT", wantPath: "/v1/feeds/42", wantBody: `{"title":"Renamed"}`,
		},
		{
			name: "refresh feed", status: 204,
			call:       func(c *Client) error { _, err := c.RefreshFeed(ctx, 42); return err },
			wantMethod: "PUT", wantPath: "/v1/feeds/42/refresh",
		},
		{
			name: "refresh all feeds", status: 204,
			call:       func(c *Client) error { _, err := c.RefreshAllFeeds(ctx); return err },
			wantMethod: "PUT", wantPath: "/v1/feeds/refresh",
		},
		{
			name: "remove feed", status: 204,
			call:       func(c *Client) error { _, err := c.RemoveFeed(ctx, 42); return err },
			wantMethod: "DELETE", wantPath: "/v1/feeds/42",
		},
		{
			name: "discover", status: 200, body: `[]`,
			call:       func(c *Client) error { _, err := c.Discover(ctx, "https://example.com"); return err },
			wantMethod: "POST", wantPath: "/v1/discover", wantBody: `{"url":"https://example.com"}`,
		},
		{
			name: "feed entry", status: 200, body: `{"id":888}`,
			call:       func(c *Client) error { _, err := c.FeedEntry(ctx, 42, 888); return err },
			wantMethod: "GET", wantPath: "/v1/feeds/42/entries/888",
		},
		{
			name: "fetch entry content", status: 200, body: `{"content":"<p>hi</p>"}`,
			call:       func(c *Client) error { _, err := c.FetchEntryContent(ctx, 888); return err },
			wantMethod: "GET", wantPath: "/entries/888/fetch-content",
		},
		{
			name: "category entries defaults", status: 200, body: `{"total":0,"entries":[]}`,
			call:       func(c *Client) error { _, err := c.CategoryEntries(ctx, 40, nil); return err },
			wantMethod: "GET", wantPath: "/v1/categories/40/entries",
			wantQuery: "limit=1&order=id&direction=asc",
		},
		{
			name: "feed entries custom", status: 200, body: `{"total":0,"entries":[]}`,
			call: func(c *Client) error {
				_, err := c.FeedEntries(ctx, 42, &EntryListOptions{Limit: 50, Order: OrderPublishedAt, Direction: DirectionDesc})
				return err
			},
			wantMethod: "GET", wantPath: "/v1/feeds/42/entries",
			wantQuery: "limit=50&order=published_at&direction=desc",
		},
		{
			name: "entries", status: 200, body: `{"total":0,"entries":[]}`,
			call: func(c *Client) error {
				_, err := c.Entries(ctx, &EntryFilter{Status: "read", Direction: "asc"})
				return err
			},
			wantMethod: "GET", wantPath: "/v1/entries", wantQuery: "status=read&direction=asc",
		},
		{
			name: "update entries", status: 204,
			call:       func(c *Client) error { _, err := c.UpdateEntries(ctx, []int64{1, 2}, EntryStatusRead); return err },
			wantMethod: "PUT", wantPath: "/v1/entries", wantBody: `{"entry_ids":[1,2],"status":"read"}`,
		},
		{
			name: "toggle bookmark", status: 204,
			call:       func(c *Client) error { _, err := c.ToggleBookmark(ctx, 888); return err },
			wantMethod: "PUT", wantPath: "/v1/entries/888/bookmark",
		},
		{
			name: "create category", status: 201, body: `{"id":5,"title":"news"}`,
			call:       func(c *Client) error { _, err := c.CreateCategory(ctx, "news"); return err },
			wantMethod: "POST", wantPath: "/v1/categories", wantBody: `{"title":"news"}`,
		},
		{
			name: "update category", status: 201, body: `{"id":5,"title":"world"}`,
			call:       func(c *Client) error { _, err := c.UpdateCategory(ctx, 5, "world"); return err },
			wantMethod: "PUT", wantPath: "/v1/categories/5", wantBody: `{"title":"world"}`,
		},
		{
			name: "delete category", status: 204,
			call:       func(c *Client) error { _, err := c.DeleteCategory(ctx, 5); return err },
			wantMethod: "DELETE", wantPath: "/v1/categories/5",
		},
		{
			name: "mark category as read", status: 204,
			call:       func(c *Client) error { _, err := c.MarkCategoryAsRead(ctx, 5); return err },
			wantMethod: "PUT", wantPath: "/v1/categories/5/mark-all-as-read",
		},
		{
			name: "export", status: 200, body: `<opml/>`,
			call:       func(c *Client) error { _, err := c.Export(ctx); return err },
			wantMethod: "GET", wantPath: "/v1/export",
		},
		{
			name: "import", status: 201,
			call:       func(c *Client) error { _, err := c.Import(ctx, strings.NewReader("<opml/>")); return err },
			wantMethod: "POST", wantPath: "/v1/import", wantBody: `<opml/>`,
		},
		{
			name: "create user", status: 201, body: `{"id":2,"username":"bob"}`,
			call: func(c *Client) error {
				_, err := c.CreateUser(ctx, &UserCreationRequest{Username: "bob", Password: "pw"})
				return err
			},
			wantMethod: "POST", wantPath: "/v1/users",
			wantBody: `{"username":"bob","password":"pw","is_admin":false}`,
		},
		{
			name: "update user", status: 201, body: `{"id":2,"username":"bob"}`,
			call: func(c *Client) error {
				theme := "dark_serif"
				_, err := c.UpdateUser(ctx, 2, &UserModificationRequest{Theme: &theme})
				return err
			},
			wantMethod: "PUT", wantPath: "/v1/users/2", wantBody: `{"theme":"dark_serif"}`,
		},
		{
			name: "user by id", status: 200, body: `{"id":2}`,
			call:       func(c *Client) error { _, err := c.UserByID(ctx, 2); return err },
			wantMethod: "GET", wantPath: "/v1/users/2",
		},
		{
			name: "users", status: 200, body: `[]`,
			call:       func(c *Client) error { _, err := c.Users(ctx); return err },
			wantMethod: "GET", wantPath: "/v1/users",
		},
		{
			name: "delete user", status: 204,
			call:       func(c *Client) error { _, err := c.DeleteUser(ctx, 2); return err },
			wantMethod: "DELETE", wantPath: "/v1/users/2",
		},
		{
			name: "mark user as read", status: 204,
			call:       func(c *Client) error { _, err := c.MarkUserAsRead(ctx, 2); return err },
			wantMethod: "PUT", wantPath: "/v1/users/2/mark-all-as-read",
		},
		{
			name: "counters", status: 200, body: `{"reads":{},"unreads":{}}`,
			call:       func(c *Client) error { _, err := c.FetchCounters(ctx); return err },
			wantMethod: "GET", wantPath: "/v1/feeds/counters",
		},
		{
			name: "healthcheck", status: 200, body: `OK`,
			call:       func(c *Client) error { _, err := c.Healthcheck(ctx); return err },
			wantMethod: "GET", wantPath: "/v1/healthcheck",
		},
		{
			name: "version", status: 200, body: `2.0.34`,
			call:       func(c *Client) error { _, err := c.Version(ctx); return err },
			wantMethod: "GET", wantPath: "/version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, tt.status, tt.body)

			require.NoError(t, tt.call(client))
			assert.Equal(t, tt.wantMethod, rec.Method)
			assert.Equal(t, tt.wantPath, rec.Path)
			assert.Equal(t, tt.wantQuery, rec.RawQuery)
			assert.Equal(t, tt.wantBody, rec.Body)
			assert.Equal(t, "test-token", rec.Header.Get("X-Auth-Token"))
			assert.Empty(t, rec.Header.Get("Authorization"))
		})
	}
}

func TestEntries_DefaultQuery(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"total":2,"entries":[{"id":10,"status":"unread"},{"id":11,"status":"unread"}]}`)

	result, err := client.Entries(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "status=unread&direction=desc", rec.RawQuery)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, []int64{10, 11}, result.EntryIDs())
	assert.True(t, result.Entries[0].IsUnread())
}

func TestEntries_EscapesQueryValues(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"total":0,"entries":[]}`)

	_, err := client.Entries(context.Background(), &EntryFilter{Status: "a&b"})
	require.NoError(t, err)
	assert.Equal(t, "status=a%26b&direction=desc", rec.RawQuery)
}

func TestUpdateEntries(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"no content", http.StatusNoContent, true},
		{"ok", http.StatusOK, false},
		{"bad request", http.StatusBadRequest, false},
		{"server error", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.status, `{"error_message":"whatever"}`)

			ok, err := client.UpdateEntries(context.Background(), []int64{1}, EntryStatusRead)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	t.Run("default status and empty ids", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusNoContent, "")

		ok, err := client.UpdateEntries(context.Background(), nil, "")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"entry_ids":[],"status":"unread"}`, rec.Body)
	})
}

func TestBooleanEndpoints(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		success int
		call    func(c *Client) (bool, error)
	}{
		{"toggle bookmark", 204, func(c *Client) (bool, error) { return c.ToggleBookmark(ctx, 1) }},
		{"delete category", 204, func(c *Client) (bool, error) { return c.DeleteCategory(ctx, 1) }},
		{"mark category as read", 204, func(c *Client) (bool, error) { return c.MarkCategoryAsRead(ctx, 1) }},
		{"delete user", 204, func(c *Client) (bool, error) { return c.DeleteUser(ctx, 1) }},
		{"mark user as read", 204, func(c *Client) (bool, error) { return c.MarkUserAsRead(ctx, 1) }},
		{"import", 201, func(c *Client) (bool, error) { return c.Import(ctx, strings.NewReader("<opml/>")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.success, "")
			ok, err := tt.call(client)
			require.NoError(t, err)
			assert.True(t, ok)

			client, _ = newTestClient(t, http.StatusUnauthorized, `{"error_message":"denied"}`)
			ok, err = tt.call(client)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestRawResponseEndpoints(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNotFound, `{"error_message":"feed not found"}`)

	resp, err := client.RemoveFeed(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error_message":"feed not found"}`, string(resp.Body))
}

func TestCreateFeed(t *testing.T) {
	client, _ := newTestClient(t, http.StatusCreated, `{"feed_id":262}`)

	id, err := client.CreateFeed(context.Background(), "https://example.com/feed", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(262), id)
}

func TestFeeds_Decoding(t *testing.T) {
	body := `[{"id":42,"title":"Example","feed_url":"https://example.com/feed","parsing_error_count":2,
		"category":{"id":3,"title":"News","user_id":1}}]`
	client, _ := newTestClient(t, http.StatusOK, body)

	feeds, err := client.Feeds(context.Background())
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "Example", feeds[0].Title)
	assert.Equal(t, "News", feeds[0].CategoryTitle())
	assert.True(t, feeds[0].HasParsingErrors())
}

func TestFetchCounters(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"reads":{"1":5},"unreads":{"1":3,"2":4}}`)

	counters, err := client.FetchCounters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, counters.ReadCounters[1])
	assert.Equal(t, 7, counters.TotalUnread())
}

func TestExport(t *testing.T) {
	opml := "<?xml version=\"1.0\"?>\n<opml version=\"2.0\"></opml>\n"

	t.Run("returns text verbatim", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, opml)
		got, err := client.Export(context.Background())
		require.NoError(t, err)
		assert.Equal(t, opml, got)
	})

	t.Run("fails on error status", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusForbidden, "")
		_, err := client.Export(context.Background())
		var statusErr *UnexpectedStatusError
		require.True(t, errors.As(err, &statusErr))
		assert.True(t, statusErr.IsUnauthorized())
	})
}

func TestVersion(t *testing.T) {
	t.Run("returns body verbatim", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, "2.0.34")
		v, err := client.Version(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2.0.34", v)
	})

	t.Run("fails on non-200", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusInternalServerError, "oops")
		_, err := client.Version(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrVersionUnavailable))
		assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	})
}

func TestServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    semver.Version
		wantErr bool
	}{
		{name: "plain", body: "2.0.34", want: semver.MustParse("2.0.34")},
		{name: "leading v", body: "v2.1.0", want: semver.MustParse("2.1.0")},
		{name: "garbage", body: "not-a-version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.StatusOK, tt.body)
			v, err := client.ServerVersion(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidVersion))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.EQ(v))
		})
	}
}

func TestTestConnection(t *testing.T) {
	client, _ := newTestClient(t, http.StatusUnauthorized, `{"error_message":"Access Unauthorized"}`)

	err := client.TestConnection(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Miniflux")

	var statusErr *UnexpectedStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.True(t, statusErr.IsUnauthorized())
}
