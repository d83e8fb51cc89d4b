package post_http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"blogd/internal/delivery/http/templates"
	"blogd/internal/logger"
	"blogd/internal/model"
)

type PostLister interface {
	ListPublished(ctx context.Context, page int) (*model.PostPage, error)
}

type ListPostsHandler struct {
	postService PostLister
	blogTitle   string
	log         *logger.Logger
}

func NewListPostsHandler(postService PostLister, blogTitle string, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		blogTitle:   blogTitle,
		log:         log,
	}
}

func (h *ListPostsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := resolvePageParam(r.URL.Query().Get("page"))

	postPage, err := h.postService.ListPublished(r.Context(), page)
	if err != nil {
		h.log.Error("Failed to list posts", slog.Int("page", page), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	renderHTML(w, h.log, http.StatusOK, templates.PostListPage(h.blogTitle, postPage))
}

// resolvePageParam never fails: a missing or unparseable page parameter means
// the first page. Pages past the end are corrected by the service.
func resolvePageParam(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
