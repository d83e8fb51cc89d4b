package post_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	mailer_client "blogd/internal/clients/mailer"
	"blogd/internal/custom_errors"
	"blogd/internal/infrastructure/config"
	"blogd/internal/logger"
	"blogd/internal/metrics"
	"blogd/internal/model"
	post_repository "blogd/internal/repository/post"
)

const defaultPageSize = 3

type PostService struct {
	postRepo post_repository.Repository
	mailer   mailer_client.Client
	cfg      *config.Config
	log      *logger.Logger
	metrics  metrics.Provider
	validate *validator.Validate
}

func NewPostService(
	postRepo post_repository.Repository,
	mailer mailer_client.Client,
	cfg *config.Config,
	log *logger.Logger,
	metrics metrics.Provider,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		mailer:   mailer,
		cfg:      cfg,
		log:      log,
		metrics:  metrics,
		validate: validator.New(),
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	if post.Title == "" || post.AuthorID <= 0 {
		s.log.Debug("Invalid create post input", slog.String("title", post.Title), slog.Int64("author_id", post.AuthorID))
		return nil, custom_errors.ErrValidationFailed
	}
	status := post.Status
	if status == "" {
		status = model.PostStatusDraft
	}
	if err := status.IsValid(); err != nil {
		s.log.Debug("Invalid post status", slog.String("status", string(post.Status)))
		return nil, custom_errors.ErrValidationFailed
	}

	postSlug := post.Slug
	if postSlug == "" {
		postSlug = slug.Make(post.Title)
	}

	newPost := &model.Post{
		Title:    post.Title,
		Slug:     postSlug,
		AuthorID: post.AuthorID,
		Body:     post.Body,
		Publish:  post.PublishOrNow(),
		Status:   status,
	}

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		if errors.Is(err, custom_errors.ErrSlugTaken) {
			s.log.Debug("Slug taken for publish date", slog.String("slug", postSlug))
			return nil, custom_errors.ErrSlugTaken
		}
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("create", true)
	return createdPost, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	if update.Status != nil {
		if err := update.Status.IsValid(); err != nil {
			s.log.Debug("Invalid post status for update", slog.String("status", string(*update.Status)))
			return nil, custom_errors.ErrValidationFailed
		}
	}
	if update.Slug != nil && *update.Slug == "" {
		return nil, custom_errors.ErrValidationFailed
	}

	updatedPost, err := s.postRepo.Update(ctx, id, update)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		case errors.Is(err, custom_errors.ErrSlugTaken):
			return nil, custom_errors.ErrSlugTaken
		case errors.Is(err, custom_errors.ErrNoUpdateRows):
			return nil, custom_errors.ErrNoUpdateRows
		default:
			s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementPostOperations("update", true)
	return updatedPost, nil
}

// ListPublished returns one page of published posts, newest publish first. Page
// numbers out of range never fail: anything below 1 resolves to the first page,
// anything past the end resolves to the last one.
func (s *PostService) ListPublished(ctx context.Context, page int) (*model.PostPage, error) {
	pageSize := s.cfg.Blog.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	posts, total, err := s.listPublishedPage(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
		posts, total, err = s.listPublishedPage(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
	}

	if posts == nil {
		posts = []*model.Post{}
	}

	return &model.PostPage{
		Posts:      posts,
		Number:     page,
		TotalPages: totalPages,
		TotalPosts: total,
	}, nil
}

func (s *PostService) listPublishedPage(ctx context.Context, page, pageSize int) ([]*model.Post, int, error) {
	published := model.PostStatusPublished
	limit := pageSize
	offset := (page - 1) * pageSize

	posts, total, err := s.postRepo.List(ctx, model.PostFilters{
		Status: &published,
		Limit:  &limit,
		Offset: &offset,
	})
	if err != nil {
		s.log.Error("Failed to list published posts", slog.Int("page", page), slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	return posts, total, nil
}

// GetPublishedByDate resolves a post by its natural key: the calendar date of
// its publish timestamp plus its slug. Zero matches and multiple matches both
// come back as not found; duplicates mean the uniqueness invariant is broken
// and picking one arbitrarily would mask that.
func (s *PostService) GetPublishedByDate(ctx context.Context, year, month, day int, slug string) (*model.Post, error) {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		s.log.Debug("Invalid calendar date in natural key",
			slog.Int("year", year), slog.Int("month", month), slog.Int("day", day))
		return nil, custom_errors.ErrPostNotFound
	}

	published := model.PostStatusPublished
	posts, total, err := s.postRepo.List(ctx, model.PostFilters{
		Status:      &published,
		Slug:        &slug,
		PublishedOn: &date,
	})
	if err != nil {
		s.log.Error("Failed to look up post by natural key",
			slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if total != 1 {
		if total > 1 {
			s.log.Warn("Multiple posts share a slug and publish date",
				slog.String("slug", slug),
				slog.Int("matches", total))
		} else {
			s.log.Debug("Post not found by natural key", slog.String("slug", slug))
		}
		return nil, custom_errors.ErrPostNotFound
	}

	return posts[0], nil
}

func (s *PostService) GetPublishedByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	if post.Status != model.PostStatusPublished {
		s.log.Debug("Post is not published", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	return post, nil
}

// SharePost sends a recommendation mail for a published post. The form is
// validated again here so the contract holds for any caller, not just the HTTP
// layer. A transport failure is always propagated, never swallowed.
func (s *PostService) SharePost(ctx context.Context, postID int64, share *model.SharePostDTO) error {
	if err := s.validate.Struct(share); err != nil {
		s.log.Debug("Share form failed validation", slog.Int64("id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrValidationFailed
	}

	post, err := s.GetPublishedByID(ctx, postID)
	if err != nil {
		return err
	}

	postURL := s.PostURL(post)
	subject := fmt.Sprintf("%s recommends you read %s", share.Name, post.Title)
	body := fmt.Sprintf("Read %s at %s\n\n%s's comments: %s",
		post.Title, postURL, share.Name, share.Comments)

	sendCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.SMTP.TimeoutSeconds)*time.Second)
	defer cancel()

	err = s.mailer.Send(sendCtx, mailer_client.Message{
		From:    s.cfg.SMTP.From,
		To:      share.EmailTo,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		s.metrics.IncrementMailSends(false)
		s.log.Error("Failed to send share mail",
			slog.Int64("id", postID),
			slog.String("error", err.Error()))
		return custom_errors.ErrMailDelivery
	}

	s.metrics.IncrementMailSends(true)
	s.log.Info("Post shared by mail", slog.Int64("id", postID))
	return nil
}

// PostURL builds the absolute detail URL for a post from the configured public
// base URL and the post's natural key.
func (s *PostService) PostURL(post *model.Post) string {
	publish := post.Publish.Time.UTC()
	return fmt.Sprintf("%s/blog/%d/%02d/%02d/%s",
		strings.TrimRight(s.cfg.Blog.PublicURL, "/"),
		publish.Year(), int(publish.Month()), publish.Day(), post.Slug)
}
