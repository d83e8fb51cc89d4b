package post_http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	g "github.com/maragudk/gomponents"

	"blogd/internal/infrastructure/config"
	"blogd/internal/logger"
	post_service "blogd/internal/service/post"
)

var validate = validator.New()

type PostHTTPService struct {
	postService      post_service.Service
	log              *logger.Logger
	listPostsHandler *ListPostsHandler
	getPostHandler   *GetPostHandler
	sharePostHandler *SharePostHandler
}

func NewPostHTTPService(postService post_service.Service, cfg *config.Config, log *logger.Logger) *PostHTTPService {
	blogTitle := cfg.Blog.Title
	return &PostHTTPService{
		postService:      postService,
		log:              log,
		listPostsHandler: NewListPostsHandler(postService, blogTitle, log),
		getPostHandler:   NewGetPostHandler(postService, blogTitle, log),
		sharePostHandler: NewSharePostHandler(postService, validate, blogTitle, log),
	}
}

func (s *PostHTTPService) RegisterRoutes(r chi.Router) {
	r.Get("/blog", s.listPostsHandler.List)
	r.Get("/blog/{year}/{month}/{day}/{slug}", s.getPostHandler.GetPost)
	r.HandleFunc("/blog/{postID}/share", s.sharePostHandler.Share)
}

func renderHTML(w http.ResponseWriter, log *logger.Logger, statusCode int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := node.Render(w); err != nil {
		log.Error("Failed to render template", slog.String("error", err.Error()))
	}
}
