package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blogd/internal/custom_errors"
	"blogd/internal/logger"
	"blogd/internal/model"
)

// PostRepository keeps posts in a map. It mirrors the postgres repository's
// behavior, including the slug-per-publish-date invariant, so tests can run
// against it interchangeably.
type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func (p *PostRepository) slugTakenOnDate(slug string, publish time.Time, excludeID int64) bool {
	for _, post := range p.posts {
		if post.ID == excludeID {
			continue
		}
		if post.Slug == slug && sameUTCDate(post.Publish.Time, publish) {
			return true
		}
	}
	return false
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()

	publish := post.Publish
	if !publish.Valid {
		publish = pgtype.Timestamptz{Time: now, Valid: true}
	}
	status := post.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	if p.slugTakenOnDate(post.Slug, publish.Time, 0) {
		p.log.Debug("Slug already used on publish date",
			slog.String("slug", post.Slug),
			slog.Time("publish", publish.Time))
		return nil, custom_errors.ErrSlugTaken
	}

	newPost := &model.Post{
		ID:       p.nextID,
		Title:    post.Title,
		Slug:     post.Slug,
		AuthorID: post.AuthorID,
		Body:     post.Body,
		Publish:  publish,
		Created:  pgtype.Date{Time: now, Valid: true},
		Updated:  pgtype.Timestamptz{Time: now, Valid: true},
		Status:   status,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title == nil && update.Slug == nil && update.Body == nil &&
		update.Publish == nil && update.Status == nil {
		return nil, custom_errors.ErrNoUpdateRows
	}

	if update.Slug != nil || update.Publish != nil {
		finalSlug := post.Slug
		if update.Slug != nil {
			finalSlug = *update.Slug
		}
		finalPublish := post.Publish.Time
		if update.Publish != nil {
			finalPublish = *update.Publish
		}
		if p.slugTakenOnDate(finalSlug, finalPublish, id) {
			return nil, custom_errors.ErrSlugTaken
		}
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Slug != nil {
		post.Slug = *update.Slug
	}
	if update.Body != nil {
		post.Body = *update.Body
	}
	if update.Publish != nil {
		post.Publish = pgtype.Timestamptz{Time: *update.Publish, Valid: true}
	}
	if update.Status != nil {
		post.Status = *update.Status
	}

	post.Updated = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var filteredPosts []*model.Post
	for _, post := range p.posts {
		if filters.Status != nil && post.Status != *filters.Status {
			continue
		}
		if filters.Slug != nil && post.Slug != *filters.Slug {
			continue
		}
		if filters.AuthorID != nil && post.AuthorID != *filters.AuthorID {
			continue
		}
		if filters.PublishedOn != nil && !sameUTCDate(post.Publish.Time, *filters.PublishedOn) {
			continue
		}

		postCopy := *post
		filteredPosts = append(filteredPosts, &postCopy)
	}

	sort.Slice(filteredPosts, func(i, j int) bool {
		return filteredPosts[i].Publish.Time.After(filteredPosts[j].Publish.Time)
	})

	total := len(filteredPosts)

	if filters.Offset != nil {
		offset := *filters.Offset
		if offset >= len(filteredPosts) {
			return []*model.Post{}, total, nil
		}
		filteredPosts = filteredPosts[offset:]
	}

	if filters.Limit != nil {
		limit := *filters.Limit
		if limit < len(filteredPosts) {
			filteredPosts = filteredPosts[:limit]
		}
	}

	return filteredPosts, total, nil
}
