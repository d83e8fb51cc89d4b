package post_service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mailer_client "blogd/internal/clients/mailer"
	"blogd/internal/custom_errors"
	"blogd/internal/infrastructure/config"
	"blogd/internal/logger"
	"blogd/internal/model"
	post_repository "blogd/internal/repository/post"
	"blogd/internal/repository/post/memory"
	mailer_mock "blogd/mocks/mailer"
	metrics_mock "blogd/mocks/metrics"
	post_repository_mock "blogd/mocks/post"
)

func testConfig() *config.Config {
	return &config.Config{
		Blog: config.Blog{Title: "My Blog", PublicURL: "http://testserver", PageSize: 2},
		SMTP: config.SMTP{From: "admin@myblog.com", TimeoutSeconds: 5},
	}
}

func newTestService(repo post_repository.Repository, mailer mailer_client.Client) *PostService {
	return NewPostService(repo, mailer, testConfig(), logger.New("test"), &metrics_mock.Provider{})
}

func publishAt(year int, month time.Month, day int) *time.Time {
	ts := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return &ts
}

func seedPublished(t *testing.T, service *PostService, count int) []*model.Post {
	t.Helper()
	posts := make([]*model.Post, 0, count)
	for i := 0; i < count; i++ {
		publish := time.Date(2024, time.January, 1+i, 12, 0, 0, 0, time.UTC)
		post, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 1,
			Title:    "Post " + string(rune('A'+i)),
			Body:     "Body",
			Publish:  &publish,
			Status:   model.PostStatusPublished,
		})
		require.NoError(t, err)
		posts = append(posts, post)
	}
	return posts
}

func TestPostService_ListPublished(t *testing.T) {
	t.Run("empty store yields a single empty page", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))

		page, err := service.ListPublished(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 0, page.TotalPosts)
		assert.Empty(t, page.Posts)
		assert.False(t, page.HasPrev())
		assert.False(t, page.HasNext())
	})

	t.Run("pages partition the published sequence newest first", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))
		seedPublished(t, service, 5)

		var seen []string
		for pageNum := 1; pageNum <= 3; pageNum++ {
			page, err := service.ListPublished(context.Background(), pageNum)
			require.NoError(t, err)
			assert.Equal(t, pageNum, page.Number)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, 5, page.TotalPosts)
			for _, post := range page.Posts {
				seen = append(seen, post.Title)
			}
		}

		// newest publish dates first, every post exactly once
		assert.Equal(t, []string{"Post E", "Post D", "Post C", "Post B", "Post A"}, seen)
	})

	t.Run("drafts are excluded", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))
		seedPublished(t, service, 1)

		_, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 1, Title: "Draft", Body: "Body", Publish: publishAt(2024, time.June, 1),
		})
		require.NoError(t, err)

		page, err := service.ListPublished(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalPosts)
		require.Len(t, page.Posts, 1)
		assert.NotEqual(t, "Draft", page.Posts[0].Title)
	})

	t.Run("page past the end resolves to the last page", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))
		seedPublished(t, service, 5)

		lastPage, err := service.ListPublished(context.Background(), 3)
		require.NoError(t, err)

		farPage, err := service.ListPublished(context.Background(), 9999)
		require.NoError(t, err)

		assert.Equal(t, lastPage.Number, farPage.Number)
		assert.Equal(t, lastPage.TotalPages, farPage.TotalPages)
		require.Len(t, farPage.Posts, len(lastPage.Posts))
		for i := range lastPage.Posts {
			assert.Equal(t, lastPage.Posts[i].ID, farPage.Posts[i].ID)
		}
	})

	t.Run("page below one resolves to the first page", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))
		seedPublished(t, service, 3)

		first, err := service.ListPublished(context.Background(), 1)
		require.NoError(t, err)

		negative, err := service.ListPublished(context.Background(), -4)
		require.NoError(t, err)

		assert.Equal(t, first.Number, negative.Number)
		require.Len(t, negative.Posts, len(first.Posts))
	})
}

func TestPostService_GetPublishedByDate(t *testing.T) {
	t.Run("resolves a published post by date and slug", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))

		created, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 1,
			Title:    "Hello World",
			Body:     "Body",
			Publish:  publishAt(2024, time.January, 5),
			Status:   model.PostStatusPublished,
		})
		require.NoError(t, err)
		assert.Equal(t, "hello-world", created.Slug)

		got, err := service.GetPublishedByDate(context.Background(), 2024, 1, 5, "hello-world")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("wrong date is not found", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))

		_, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 1,
			Title:    "Hello World",
			Body:     "Body",
			Publish:  publishAt(2024, time.January, 5),
			Status:   model.PostStatusPublished,
		})
		require.NoError(t, err)

		_, err = service.GetPublishedByDate(context.Background(), 2024, 1, 6, "hello-world")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("draft post is not found by its natural key", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))

		_, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 1,
			Title:    "Hello World",
			Body:     "Body",
			Publish:  publishAt(2024, time.January, 5),
		})
		require.NoError(t, err)

		_, err = service.GetPublishedByDate(context.Background(), 2024, 1, 5, "hello-world")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("multiple matches surface as not found", func(t *testing.T) {
		repoMock := new(post_repository_mock.Repository)
		service := newTestService(repoMock, new(mailer_mock.Client))

		duplicates := []*model.Post{
			{ID: 1, Slug: "hello-world", Status: model.PostStatusPublished},
			{ID: 2, Slug: "hello-world", Status: model.PostStatusPublished},
		}
		repoMock.On("List", mock.Anything, mock.AnythingOfType("model.PostFilters")).Return(duplicates, 2, nil)

		_, err := service.GetPublishedByDate(context.Background(), 2024, 1, 5, "hello-world")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("impossible calendar date never reaches the store", func(t *testing.T) {
		repoMock := new(post_repository_mock.Repository)
		service := newTestService(repoMock, new(mailer_mock.Client))

		_, err := service.GetPublishedByDate(context.Background(), 2024, 13, 41, "hello-world")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		repoMock.AssertNotCalled(t, "List")
	})
}

func TestPostService_SharePost(t *testing.T) {
	publishedPost := &model.Post{
		ID:       42,
		Title:    "Hello World",
		Slug:     "hello-world",
		AuthorID: 1,
		Body:     "Body",
		Publish:  pgtype.Timestamptz{Time: time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC), Valid: true},
		Status:   model.PostStatusPublished,
	}

	validForm := func() *model.SharePostDTO {
		return &model.SharePostDTO{
			Name:      "Alice",
			EmailFrom: "a@x.com",
			EmailTo:   "b@y.com",
			Comments:  "",
		}
	}

	t.Run("sends exactly one mail with composed subject and absolute URL", func(t *testing.T) {
		repoMock := new(post_repository_mock.Repository)
		mailerMock := new(mailer_mock.Client)
		service := newTestService(repoMock, mailerMock)

		repoMock.On("GetByID", mock.Anything, int64(42)).Return(publishedPost, nil)
		mailerMock.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer_client.Message) bool {
			return msg.From == "admin@myblog.com" &&
				msg.To == "b@y.com" &&
				msg.Subject == "Alice recommends you read Hello World" &&
				strings.Contains(msg.Body, "http://testserver/blog/2024/01/05/hello-world")
		})).Return(nil)

		err := service.SharePost(context.Background(), 42, validForm())
		require.NoError(t, err)
		mailerMock.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("draft post is not found and nothing is sent", func(t *testing.T) {
		repoMock := new(post_repository_mock.Repository)
		mailerMock := new(mailer_mock.Client)
		service := newTestService(repoMock, mailerMock)

		draft := *publishedPost
		draft.Status = model.PostStatusDraft
		repoMock.On("GetByID", mock.Anything, int64(42)).Return(&draft, nil)

		err := service.SharePost(context.Background(), 42, validForm())
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		mailerMock.AssertNotCalled(t, "Send")
	})

	t.Run("absent post is not found and nothing is sent", func(t *testing.T) {
		repoMock := new(post_repository_mock.Repository)
		mailerMock := new(mailer_mock.Client)
		service := newTestService(repoMock, mailerMock)

		repoMock.On("GetByID", mock.Anything, int64(42)).Return(nil, custom_errors.ErrPostNotFound)

		err := service.SharePost(context.Background(), 42, validForm())
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		mailerMock.AssertNotCalled(t, "Send")
	})

	t.Run("invalid sender address fails validation before any side effect", func(t *testing.T) {
		repoMock := new(post_repository_mock.Repository)
		mailerMock := new(mailer_mock.Client)
		service := newTestService(repoMock, mailerMock)

		form := validForm()
		form.EmailFrom = "not-an-email"

		err := service.SharePost(context.Background(), 42, form)
		assert.ErrorIs(t, err, custom_errors.ErrValidationFailed)
		mailerMock.AssertNotCalled(t, "Send")
		repoMock.AssertNotCalled(t, "GetByID")
	})

	t.Run("transport failure is propagated, not swallowed", func(t *testing.T) {
		repoMock := new(post_repository_mock.Repository)
		mailerMock := new(mailer_mock.Client)
		service := newTestService(repoMock, mailerMock)

		repoMock.On("GetByID", mock.Anything, int64(42)).Return(publishedPost, nil)
		mailerMock.On("Send", mock.Anything, mock.AnythingOfType("mailer_client.Message")).
			Return(custom_errors.ErrMailDelivery)

		err := service.SharePost(context.Background(), 42, validForm())
		assert.ErrorIs(t, err, custom_errors.ErrMailDelivery)
	})
}

func TestPostService_CreatePost(t *testing.T) {
	t.Run("derives slug from title and defaults to draft", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))

		post, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 1,
			Title:    "Another Post Here",
			Body:     "Body",
		})
		require.NoError(t, err)
		assert.Equal(t, "another-post-here", post.Slug)
		assert.Equal(t, model.PostStatusDraft, post.Status)
		assert.True(t, post.Publish.Valid)
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))

		_, err := service.CreatePost(context.Background(), &model.CreatePostDTO{AuthorID: 1, Body: "Body"})
		assert.ErrorIs(t, err, custom_errors.ErrValidationFailed)
	})

	t.Run("slug collision on same publish date", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))

		publish := publishAt(2024, time.January, 5)
		_, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 1, Title: "Hello World", Body: "Body", Publish: publish,
		})
		require.NoError(t, err)

		_, err = service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 2, Title: "Hello World", Body: "Other", Publish: publish,
		})
		assert.ErrorIs(t, err, custom_errors.ErrSlugTaken)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Run("publishing a draft makes it visible", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))

		draft, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 1, Title: "Hello World", Body: "Body", Publish: publishAt(2024, time.January, 5),
		})
		require.NoError(t, err)

		_, err = service.GetPublishedByDate(context.Background(), 2024, 1, 5, "hello-world")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

		published := model.PostStatusPublished
		_, err = service.UpdatePost(context.Background(), draft.ID, &model.UpdatePostDTO{Status: &published})
		require.NoError(t, err)

		got, err := service.GetPublishedByDate(context.Background(), 2024, 1, 5, "hello-world")
		require.NoError(t, err)
		assert.Equal(t, draft.ID, got.ID)
	})

	t.Run("invalid status fails validation", func(t *testing.T) {
		service := newTestService(memory.NewPostRepository(logger.New("test")), new(mailer_mock.Client))

		draft, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
			AuthorID: 1, Title: "Hello World", Body: "Body",
		})
		require.NoError(t, err)

		bogus := model.PostStatus("archived")
		_, err = service.UpdatePost(context.Background(), draft.ID, &model.UpdatePostDTO{Status: &bogus})
		assert.ErrorIs(t, err, custom_errors.ErrValidationFailed)
	})
}
