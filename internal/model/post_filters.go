package model

import "time"

// PostFilters narrows a listing. PublishedOn matches the calendar date of the
// publish timestamp, ignoring time of day.
type PostFilters struct {
	Status      *PostStatus
	Slug        *string
	AuthorID    *int64
	PublishedOn *time.Time
	Limit       *int
	Offset      *int
}
