package model

import "time"

type UpdatePostDTO struct {
	Title   *string     `json:"title,omitempty"`
	Slug    *string     `json:"slug,omitempty"`
	Body    *string     `json:"body,omitempty"`
	Publish *time.Time  `json:"publish,omitempty"`
	Status  *PostStatus `json:"status,omitempty"`
}
