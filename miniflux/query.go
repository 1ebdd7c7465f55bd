package miniflux

import (
	"net/url"
	"strconv"
	"strings"
)

// EntryListOptions controls the feed and category entry listings.
// Zero values fall back to limit 1, order "id", direction "asc".
type EntryListOptions struct {
	Limit     int
	Order     string
	Direction string
}

func (o *EntryListOptions) query() string {
	limit, order, direction := 1, OrderID, DirectionAsc
	if o != nil {
		if o.Limit > 0 {
			limit = o.Limit
		}
		if o.Order != "" {
			order = o.Order
		}
		if o.Direction != "" {
			direction = o.Direction
		}
	}
	return orderedQuery(
		"limit", strconv.Itoa(limit),
		"order", order,
		"direction", direction,
	)
}

// EntryFilter controls the global entry listing.
// Zero values fall back to status "unread", direction "desc".
type EntryFilter struct {
	Status    string
	Direction string
}

func (f *EntryFilter) query() string {
	status, direction := EntryStatusUnread, DirectionDesc
	if f != nil {
		if f.Status != "" {
			status = f.Status
		}
		if f.Direction != "" {
			direction = f.Direction
		}
	}
	return orderedQuery(
		"status", status,
		"direction", direction,
	)
}

// orderedQuery encodes key/value pairs in the given order.
// url.Values sorts keys, which would reorder the documented parameters.
func orderedQuery(pairs ...string) string {
	var sb strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(pairs[i]))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(pairs[i+1]))
	}
	return sb.String()
}
