package miniflux

import (
	"strings"
	"time"
)

// Entry statuses
const (
	EntryStatusUnread  = "unread"
	EntryStatusRead    = "read"
	EntryStatusRemoved = "removed"
)

// Sort directions and orders accepted by the entry endpoints
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"

	OrderID          = "id"
	OrderStatus      = "status"
	OrderPublishedAt = "published_at"
	OrderCategoryID  = "category_id"
)

// User represents a Miniflux user
type User struct {
	ID                int64      `json:"id"`
	Username          string     `json:"username"`
	IsAdmin           bool       `json:"is_admin"`
	Theme             string     `json:"theme"`
	Language          string     `json:"language"`
	Timezone          string     `json:"timezone"`
	EntryDirection    string     `json:"entry_sorting_direction"`
	EntryOrder        string     `json:"entry_sorting_order"`
	EntriesPerPage    int        `json:"entries_per_page"`
	KeyboardShortcuts bool       `json:"keyboard_shortcuts"`
	ShowReadingTime   bool       `json:"show_reading_time"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`

	Extra Extra `json:"-"`
}

// Users is a list of users
type Users []*User

// UserCreationRequest is the payload of CreateUser
type UserCreationRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserModificationRequest is the payload of UpdateUser. Nil fields are left
// unchanged. Extra carries settings without a field here.
type UserModificationRequest struct {
	Username          *string `json:"username,omitempty"`
	Password          *string `json:"password,omitempty"`
	IsAdmin           *bool   `json:"is_admin,omitempty"`
	Theme             *string `json:"theme,omitempty"`
	Language          *string `json:"language,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	EntryDirection    *string `json:"entry_sorting_direction,omitempty"`
	EntryOrder        *string `json:"entry_sorting_order,omitempty"`
	EntriesPerPage    *int    `json:"entries_per_page,omitempty"`
	KeyboardShortcuts *bool   `json:"keyboard_shortcuts,omitempty"`
	ShowReadingTime   *bool   `json:"show_reading_time,omitempty"`

	Extra Extra `json:"-"`
}

// Category represents a feed category
type Category struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	UserID int64  `json:"user_id"`

	Extra Extra `json:"-"`
}

// Categories is a list of categories
type Categories []*Category

// Feed represents a subscribed feed
type Feed struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	FeedURL            string    `json:"feed_url"`
	SiteURL            string    `json:"site_url"`
	Title              string    `json:"title"`
	CheckedAt          time.Time `json:"checked_at"`
	EtagHeader         string    `json:"etag_header,omitempty"`
	LastModifiedHeader string    `json:"last_modified_header,omitempty"`
	ParsingErrorMsg    string    `json:"parsing_error_message,omitempty"`
	ParsingErrorCount  int       `json:"parsing_error_count,omitempty"`
	ScraperRules       string    `json:"scraper_rules"`
	RewriteRules       string    `json:"rewrite_rules"`
	Crawler            bool      `json:"crawler"`
	BlocklistRules     string    `json:"blocklist_rules"`
	KeeplistRules      string    `json:"keeplist_rules"`
	UserAgent          string    `json:"user_agent"`
	Username           string    `json:"username"`
	Password           string    `json:"password"`
	Disabled           bool      `json:"disabled"`
	IgnoreHTTPCache    bool      `json:"ignore_http_cache"`
	Category           *Category `json:"category,omitempty"`
	Icon               *FeedIcon `json:"icon,omitempty"`

	Extra Extra `json:"-"`
}

// HasParsingErrors reports whether the last refresh failed
func (f *Feed) HasParsingErrors() bool {
	return f.ParsingErrorCount > 0
}

// CategoryTitle returns the title of the feed's category, or an empty string
func (f *Feed) CategoryTitle() string {
	if f.Category == nil {
		return ""
	}
	return f.Category.Title
}

// Feeds is a list of feeds
type Feeds []*Feed

// FeedCreationRequest is the payload of CreateFeed
type FeedCreationRequest struct {
	FeedURL    string `json:"feed_url"`
	CategoryID int64  `json:"category_id"`
}

type feedCreationResponse struct {
	FeedID int64 `json:"feed_id"`
}

// FeedModificationRequest is the payload of UpdateFeed. Nil fields are left
// unchanged. Extra carries settings without a field here, e.g. hide_globally.
type FeedModificationRequest struct {
	FeedURL         *string `json:"feed_url,omitempty"`
	SiteURL         *string `json:"site_url,omitempty"`
	Title           *string `json:"title,omitempty"`
	ScraperRules    *string `json:"scraper_rules,omitempty"`
	RewriteRules    *string `json:"rewrite_rules,omitempty"`
	BlocklistRules  *string `json:"blocklist_rules,omitempty"`
	KeeplistRules   *string `json:"keeplist_rules,omitempty"`
	Crawler         *bool   `json:"crawler,omitempty"`
	UserAgent       *string `json:"user_agent,omitempty"`
	Username        *string `json:"username,omitempty"`
	Password        *string `json:"password,omitempty"`
	CategoryID      *int64  `json:"category_id,omitempty"`
	Disabled        *bool   `json:"disabled,omitempty"`
	IgnoreHTTPCache *bool   `json:"ignore_http_cache,omitempty"`

	Extra Extra `json:"-"`
}

// FeedIcon is a feed favicon, Data holds "mime/type;base64,..."
type FeedIcon struct {
	ID       int64  `json:"id"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// FeedCounters holds per-feed read and unread counts
type FeedCounters struct {
	ReadCounters   map[int64]int `json:"reads"`
	UnreadCounters map[int64]int `json:"unreads"`
}

// TotalUnread sums the unread counters of all feeds
func (fc *FeedCounters) TotalUnread() int {
	total := 0
	for _, n := range fc.UnreadCounters {
		total += n
	}
	return total
}

// Subscription is a feed found by Discover
type Subscription struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// Subscriptions is a list of discovered feeds
type Subscriptions []*Subscription

// Enclosure is an attachment of an entry
type Enclosure struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	EntryID  int64  `json:"entry_id"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int    `json:"size"`

	Extra Extra `json:"-"`
}

// Entry represents an article of a feed
type Entry struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	FeedID      int64        `json:"feed_id"`
	Status      string       `json:"status"`
	Hash        string       `json:"hash"`
	Title       string       `json:"title"`
	URL         string       `json:"url"`
	CommentsURL string       `json:"comments_url"`
	Date        time.Time    `json:"published_at"`
	CreatedAt   time.Time    `json:"created_at"`
	ChangedAt   time.Time    `json:"changed_at"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	ShareCode   string       `json:"share_code"`
	Starred     bool         `json:"starred"`
	ReadingTime int          `json:"reading_time"`
	Enclosures  []*Enclosure `json:"enclosures,omitempty"`
	Feed        *Feed        `json:"feed,omitempty"`
	Tags        []string     `json:"tags"`

	Extra Extra `json:"-"`
}

// IsUnread reports whether the entry has not been read yet
func (e *Entry) IsUnread() bool {
	return e.Status == EntryStatusUnread
}

// HasTag checks for a tag, ignoring case
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Entries is a list of entries
type Entries []*Entry

// EntryResultSet is the paginated response of the entry listing endpoints
type EntryResultSet struct {
	Total   int     `json:"total"`
	Entries Entries `json:"entries"`
}

// EntryIDs returns the IDs of all entries in the set
func (rs *EntryResultSet) EntryIDs() []int64 {
	ids := make([]int64, 0, len(rs.Entries))
	for _, e := range rs.Entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// EntryContent is the response of FetchEntryContent
type EntryContent struct {
	Content string `json:"content"`
}

// EntriesStatusUpdateRequest is the payload of UpdateEntries
type EntriesStatusUpdateRequest struct {
	EntryIDs []int64 `json:"entry_ids"`
	Status   string  `json:"status"`
}

type categoryRequest struct {
	Title string `json:"title"`
}

type discoveryRequest struct {
	URL string `json:"url"`
}

// JSON methods keep members without a struct field in Extra.

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	return decodeWithExtra(data, (*plain)(u), &u.Extra)
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return encodeWithExtra(plain(u), u.Extra)
}

func (r UserModificationRequest) MarshalJSON() ([]byte, error) {
	type plain UserModificationRequest
	return encodeWithExtra(plain(r), r.Extra)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	return decodeWithExtra(data, (*plain)(c), &c.Extra)
}

func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	return encodeWithExtra(plain(c), c.Extra)
}

func (f *Feed) UnmarshalJSON(data []byte) error {
	type plain Feed
	return decodeWithExtra(data, (*plain)(f), &f.Extra)
}

func (f Feed) MarshalJSON() ([]byte, error) {
	type plain Feed
	return encodeWithExtra(plain(f), f.Extra)
}

func (r FeedModificationRequest) MarshalJSON() ([]byte, error) {
	type plain FeedModificationRequest
	return encodeWithExtra(plain(r), r.Extra)
}

func (e *Enclosure) UnmarshalJSON(data []byte) error {
	type plain Enclosure
	return decodeWithExtra(data, (*plain)(e), &e.Extra)
}

func (e Enclosure) MarshalJSON() ([]byte, error) {
	type plain Enclosure
	return encodeWithExtra(plain(e), e.Extra)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	type plain Entry
	return decodeWithExtra(data, (*plain)(e), &e.Extra)
}

func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	return encodeWithExtra(plain(e), e.Extra)
}
