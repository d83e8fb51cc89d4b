package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"blogd/internal/custom_errors"
	"blogd/internal/logger"
	"blogd/internal/model"
	"blogd/internal/repository/postgres/db"
)

const postColumns = "id, title, slug, author_id, body, publish, created, updated, status"

type PostRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewPostRepository(db db.PgDB, log *logger.Logger) *PostRepository {
	return &PostRepository{db: db, log: log}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.AuthorID,
		&post.Body,
		&post.Publish,
		&post.Created,
		&post.Updated,
		&post.Status,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	publish := post.Publish
	if !publish.Valid {
		publish = now
	}
	status := post.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	taken, err := p.slugTakenOnDate(ctx, post.Slug, publish.Time, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		p.log.Debug("Slug already used on publish date",
			slog.String("slug", post.Slug),
			slog.Time("publish", publish.Time))
		return nil, custom_errors.ErrSlugTaken
	}

	args := pgx.NamedArgs{
		"title":     post.Title,
		"slug":      post.Slug,
		"author_id": post.AuthorID,
		"body":      post.Body,
		"publish":   publish,
		"created":   pgtype.Date{Time: now.Time, Valid: true},
		"updated":   now,
		"status":    status,
	}

	query := `
		INSERT INTO posts (title, slug, author_id, body, publish, created, updated, status)
		VALUES (@title, @slug, @author_id, @body, @publish, @created, @updated, @status)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			p.log.Debug("Unique violation creating post", slog.String("slug", post.Slug))
			return nil, custom_errors.ErrSlugTaken
		}
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	existing, err := p.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Slug != nil {
		setClauses = append(setClauses, "slug = @slug")
		args["slug"] = *update.Slug
	}
	if update.Body != nil {
		setClauses = append(setClauses, "body = @body")
		args["body"] = *update.Body
	}
	if update.Publish != nil {
		setClauses = append(setClauses, "publish = @publish")
		args["publish"] = pgtype.Timestamptz{Time: *update.Publish, Valid: true}
	}
	if update.Status != nil {
		setClauses = append(setClauses, "status = @status")
		args["status"] = *update.Status
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	// The slug-per-date invariant has to hold for the values the row will end
	// up with, not the ones in the request.
	if update.Slug != nil || update.Publish != nil {
		finalSlug := existing.Slug
		if update.Slug != nil {
			finalSlug = *update.Slug
		}
		finalPublish := existing.Publish.Time
		if update.Publish != nil {
			finalPublish = *update.Publish
		}
		taken, err := p.slugTakenOnDate(ctx, finalSlug, finalPublish, id)
		if err != nil {
			return nil, err
		}
		if taken {
			p.log.Debug("Slug already used on publish date",
				slog.String("slug", finalSlug),
				slog.Time("publish", finalPublish))
			return nil, custom_errors.ErrSlugTaken
		}
	}

	setClauses = append(setClauses, "updated = @updated")
	args["updated"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING " + postColumns

	updatedPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, custom_errors.ErrSlugTaken
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return updatedPost, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	args := pgx.NamedArgs{}
	whereClauses := []string{}

	if filters.Status != nil {
		whereClauses = append(whereClauses, "status = @status")
		args["status"] = *filters.Status
	}
	if filters.Slug != nil {
		whereClauses = append(whereClauses, "slug = @slug")
		args["slug"] = *filters.Slug
	}
	if filters.AuthorID != nil {
		whereClauses = append(whereClauses, "author_id = @author_id")
		args["author_id"] = *filters.AuthorID
	}
	if filters.PublishedOn != nil {
		whereClauses = append(whereClauses, "date(publish AT TIME ZONE 'UTC') = @published_on")
		args["published_on"] = pgtype.Date{Time: *filters.PublishedOn, Valid: true}
	}

	condition := ""
	if len(whereClauses) > 0 {
		condition = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	countQuery := "SELECT count(*) FROM posts" + condition
	if err := p.db.QueryRow(ctx, countQuery, args).Scan(&total); err != nil {
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	query := "SELECT " + postColumns + " FROM posts" + condition + " ORDER BY publish DESC"
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	return posts, total, nil
}

func (p *PostRepository) slugTakenOnDate(ctx context.Context, slug string, publish time.Time, excludeID int64) (bool, error) {
	args := pgx.NamedArgs{
		"slug":       slug,
		"publish":    pgtype.Timestamptz{Time: publish, Valid: true},
		"exclude_id": excludeID,
	}
	query := `
		SELECT EXISTS (
			SELECT 1 FROM posts
			WHERE slug = @slug
			  AND date(publish AT TIME ZONE 'UTC') = date(@publish::timestamptz AT TIME ZONE 'UTC')
			  AND id <> @exclude_id
		)`

	var taken bool
	if err := p.db.QueryRow(ctx, query, args).Scan(&taken); err != nil {
		p.log.Error("Error checking slug uniqueness", slog.String("slug", slug), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	return taken, nil
}
