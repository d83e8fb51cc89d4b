package model

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type CreatePostDTO struct {
	AuthorID int64      `json:"author_id"`
	Title    string     `json:"title"`
	Slug     string     `json:"slug,omitempty"`
	Body     string     `json:"body"`
	Publish  *time.Time `json:"publish,omitempty"`
	Status   PostStatus `json:"status,omitempty"`
}

// PublishOrNow resolves the publish timestamp, defaulting to creation time.
func (d *CreatePostDTO) PublishOrNow() pgtype.Timestamptz {
	if d.Publish != nil {
		return pgtype.Timestamptz{Time: *d.Publish, Valid: true}
	}
	return pgtype.Timestamptz{Time: time.Now(), Valid: true}
}
