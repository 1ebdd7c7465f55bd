package miniflux

import (
	"context"
	"io"

	"github.com/blang/semver"
)

// API defines the interface for Miniflux operations
type API interface {
	// TestConnection verifies the client can reach Miniflux
	TestConnection(ctx context.Context) error
	Healthcheck(ctx context.Context) (*Response, error)
	Version(ctx context.Context) (string, error)
	ServerVersion(ctx context.Context) (semver.Version, error)

	// Feed operations
	Feeds(ctx context.Context) (Feeds, error)
	Feed(ctx context.Context, feedID int64) (*Feed, error)
	FeedIcon(ctx context.Context, feedID int64) (*FeedIcon, error)
	CategoryFeeds(ctx context.Context, categoryID int64) (Feeds, error)
	CreateFeed(ctx context.Context, feedURL string, categoryID int64) (int64, error)
	UpdateFeed(ctx context.Context, feedID int64, changes *FeedModificationRequest) (*Response, error)
	RefreshFeed(ctx context.Context, feedID int64) (*Response, error)
	RefreshAllFeeds(ctx context.Context) (*Response, error)
	RemoveFeed(ctx context.Context, feedID int64) (*Response, error)
	Discover(ctx context.Context, url string) (Subscriptions, error)
	FetchCounters(ctx context.Context) (*FeedCounters, error)

	// Entry operations
	FeedEntry(ctx context.Context, feedID, entryID int64) (*Entry, error)
	FetchEntryContent(ctx context.Context, entryID int64) (*EntryContent, error)
	CategoryEntries(ctx context.Context, categoryID int64, opts *EntryListOptions) (*EntryResultSet, error)
	FeedEntries(ctx context.Context, feedID int64, opts *EntryListOptions) (*EntryResultSet, error)
	Entries(ctx context.Context, filter *EntryFilter) (*EntryResultSet, error)
	UpdateEntries(ctx context.Context, entryIDs []int64, status string) (bool, error)
	ToggleBookmark(ctx context.Context, entryID int64) (bool, error)

	// Category operations
	CreateCategory(ctx context.Context, title string) (*Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, title string) (*Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) (bool, error)
	MarkCategoryAsRead(ctx context.Context, categoryID int64) (bool, error)

	// OPML
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, opml io.Reader) (bool, error)

	// User operations
	Me(ctx context.Context) (*User, error)
	Users(ctx context.Context) (Users, error)
	UserByID(ctx context.Context, userID int64) (*User, error)
	CreateUser(ctx context.Context, req *UserCreationRequest) (*User, error)
	UpdateUser(ctx context.Context, userID int64, req *UserModificationRequest) (*User, error)
	DeleteUser(ctx context.Context, userID int64) (bool, error)
	MarkUserAsRead(ctx context.Context, userID int64) (bool, error)
}

var _ API = (*Client)(nil)
