package miniflux

import (
	"context"
	"fmt"
	"net/http"
)

// FeedEntry retrieves one entry of a feed
func (c *Client) FeedEntry(ctx context.Context, feedID, entryID int64) (*Entry, error) {
	var entry Entry
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/feeds/%d/entries/%d", feedID, entryID), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// FetchEntryContent asks the server to scrape the original article of an entry.
// This endpoint lives outside the /v1 prefix.
func (c *Client) FetchEntryContent(ctx context.Context, entryID int64) (*EntryContent, error) {
	var content EntryContent
	if err := c.getJSON(ctx, fmt.Sprintf("/entries/%d/fetch-content", entryID), &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// CategoryEntries lists the entries of a category. A nil opts uses the defaults.
func (c *Client) CategoryEntries(ctx context.Context, categoryID int64, opts *EntryListOptions) (*EntryResultSet, error) {
	return c.entries(ctx, fmt.Sprintf("/v1/categories/%d/entries%s", categoryID, opts.query()))
}

// FeedEntries lists the entries of a feed. A nil opts uses the defaults.
func (c *Client) FeedEntries(ctx context.Context, feedID int64, opts *EntryListOptions) (*EntryResultSet, error) {
	return c.entries(ctx, fmt.Sprintf("/v1/feeds/%d/entries%s", feedID, opts.query()))
}

// Entries lists entries across all feeds. A nil filter means unread, newest first.
func (c *Client) Entries(ctx context.Context, filter *EntryFilter) (*EntryResultSet, error) {
	return c.entries(ctx, "/v1/entries"+filter.query())
}

func (c *Client) entries(ctx context.Context, path string) (*EntryResultSet, error) {
	var result EntryResultSet
	if err := c.getJSON(ctx, path, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("count", len(result.Entries)).
		Int("total", result.Total).
		Msg("Retrieved entries from Miniflux")

	return &result, nil
}

// UpdateEntries sets the status of the given entries. An empty status means unread.
// It reports true only when the server answers 204.
func (c *Client) UpdateEntries(ctx context.Context, entryIDs []int64, status string) (bool, error) {
	if status == "" {
		status = EntryStatusUnread
	}
	if entryIDs == nil {
		entryIDs = []int64{}
	}
	req := EntriesStatusUpdateRequest{EntryIDs: entryIDs, Status: status}
	return c.expectStatus(ctx, http.MethodPut, "/v1/entries", JSONBody(req), http.StatusNoContent)
}

// ToggleBookmark flips the starred flag of an entry
func (c *Client) ToggleBookmark(ctx context.Context, entryID int64) (bool, error) {
	return c.expectStatus(ctx, http.MethodPut, fmt.Sprintf("/v1/entries/%d/bookmark", entryID), NoBody(), http.StatusNoContent)
}
