package post_service

import (
	"context"

	"blogd/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --with-expecter --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	ListPublished(ctx context.Context, page int) (*model.PostPage, error)
	GetPublishedByDate(ctx context.Context, year, month, day int, slug string) (*model.Post, error)
	GetPublishedByID(ctx context.Context, id int64) (*model.Post, error)
	SharePost(ctx context.Context, postID int64, share *model.SharePostDTO) error
}
