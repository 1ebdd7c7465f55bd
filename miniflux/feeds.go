package miniflux

import (
	"context"
	"fmt"
	"net/http"
)

// Feeds retrieves all feeds of the current user
func (c *Client) Feeds(ctx context.Context) (Feeds, error) {
	var feeds Feeds
	if err := c.getJSON(ctx, "/v1/feeds", &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

// Feed retrieves a single feed
func (c *Client) Feed(ctx context.Context, feedID int64) (*Feed, error) {
	var feed Feed
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/feeds/%d", feedID), &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// FeedIcon retrieves the icon of a feed
func (c *Client) FeedIcon(ctx context.Context, feedID int64) (*FeedIcon, error) {
	var icon FeedIcon
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/feeds/%d/icon", feedID), &icon); err != nil {
		return nil, err
	}
	return &icon, nil
}

// CategoryFeeds retrieves the feeds of a category
func (c *Client) CategoryFeeds(ctx context.Context, categoryID int64) (Feeds, error) {
	var feeds Feeds
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/categories/%d/feeds", categoryID), &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

// CreateFeed subscribes to feedURL in the given category and returns the new feed ID
func (c *Client) CreateFeed(ctx context.Context, feedURL string, categoryID int64) (int64, error) {
	req := FeedCreationRequest{FeedURL: feedURL, CategoryID: categoryID}

	var result feedCreationResponse
	if err := c.postJSON(ctx, "/v1/feeds", req, &result); err != nil {
		return 0, err
	}

	c.logger.Debug().Int64("feed_id", result.FeedID).Str("url", feedURL).Msg("Created feed")
	return result.FeedID, nil
}

// UpdateFeed applies changes to a feed and returns the raw response
func (c *Client) UpdateFeed(ctx context.Context, feedID int64, changes *FeedModificationRequest) (*Response, error) {
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/v1/feeds/%d", feedID), JSONBody(changes))
}

// RefreshFeed schedules a refresh of one feed and returns the raw response
func (c *Client) RefreshFeed(ctx context.Context, feedID int64) (*Response, error) {
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/v1/feeds/%d/refresh", feedID), NoBody())
}

// RefreshAllFeeds schedules a refresh of every feed and returns the raw response
func (c *Client) RefreshAllFeeds(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodPut, "/v1/feeds/refresh", NoBody())
}

// RemoveFeed unsubscribes from a feed and returns the raw response
func (c *Client) RemoveFeed(ctx context.Context, feedID int64) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/v1/feeds/%d", feedID), NoBody())
}

// Discover finds the feeds published by a website
func (c *Client) Discover(ctx context.Context, url string) (Subscriptions, error) {
	var subscriptions Subscriptions
	if err := c.postJSON(ctx, "/v1/discover", discoveryRequest{URL: url}, &subscriptions); err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// FetchCounters retrieves read and unread counters for every feed
func (c *Client) FetchCounters(ctx context.Context) (*FeedCounters, error) {
	var counters FeedCounters
	if err := c.getJSON(ctx, "/v1/feeds/counters", &counters); err != nil {
		return nil, err
	}
	return &counters, nil
}
