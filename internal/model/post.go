package model

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type Post struct {
	ID       int64              `json:"id"`
	Title    string             `json:"title"`
	Slug     string             `json:"slug"`
	AuthorID int64              `json:"author_id"`
	Body     string             `json:"body"`
	Publish  pgtype.Timestamptz `json:"publish"`
	Created  pgtype.Date        `json:"created"`
	Updated  pgtype.Timestamptz `json:"updated"`
	Status   PostStatus         `json:"status"`
}

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

func (s PostStatus) IsValid() error {
	switch s {
	case PostStatusDraft, PostStatusPublished:
		return nil
	}
	return fmt.Errorf("invalid post status: %s", s)
}

func (s *PostStatus) UnmarshalText(text []byte) error {
	ps := PostStatus(text)
	if err := ps.IsValid(); err != nil {
		return err
	}
	*s = ps
	return nil
}
