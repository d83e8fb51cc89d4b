package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blogd/internal/custom_errors"
	"blogd/internal/delivery/http/templates"
	"blogd/internal/logger"
	"blogd/internal/model"
)

type PostGetter interface {
	GetPublishedByDate(ctx context.Context, year, month, day int, slug string) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	blogTitle   string
	log         *logger.Logger
}

func NewGetPostHandler(postService PostGetter, blogTitle string, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		blogTitle:   blogTitle,
		log:         log,
	}
}

func (h *GetPostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	year, errYear := strconv.Atoi(chi.URLParam(r, "year"))
	month, errMonth := strconv.Atoi(chi.URLParam(r, "month"))
	day, errDay := strconv.Atoi(chi.URLParam(r, "day"))
	slug := chi.URLParam(r, "slug")

	if errYear != nil || errMonth != nil || errDay != nil || slug == "" {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	post, err := h.postService.GetPublishedByDate(r.Context(), year, month, day, slug)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		h.log.Error("Failed to get post", slog.String("slug", slug), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	renderHTML(w, h.log, http.StatusOK, templates.PostDetailPage(h.blogTitle, post))
}
