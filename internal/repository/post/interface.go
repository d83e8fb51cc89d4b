package post_repository

import (
	"context"

	"blogd/internal/model"
)

// Repository is the post store. List returns the matching page plus the total
// match count so callers can resolve page numbers. There is no Delete: removing
// posts is an administrative action outside this service.
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error)
}
