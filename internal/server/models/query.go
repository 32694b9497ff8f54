package models

import "github.com/sportvest/sportvest/internal/timex"

// SportAll disables the sport filter, matching the "ALL" value sent by the
// original web client.
const SportAll = "ALL"

// Query is the single filter object passed to schedule and record listings.
// An empty OwnerID means the unscoped (anonymous) view. When both a date
// range and a sport are present the date range wins; this mirrors the
// finder precedence the API has always had.
type Query struct {
	OwnerID   string
	SportType string
	From      timex.Date
	To        timex.Date
}

// HasDateRange reports whether both range bounds are set.
func (q Query) HasDateRange() bool {
	return !q.From.IsZero() && !q.To.IsZero()
}

// HasSportFilter reports whether a concrete sport is requested.
func (q Query) HasSportFilter() bool {
	return q.SportType != "" && q.SportType != SportAll
}
