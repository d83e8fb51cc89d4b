package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	blog_middleware "blogd/internal/delivery/http/middleware"
	post_http "blogd/internal/delivery/http/post"
	"blogd/internal/logger"
	"blogd/internal/metrics"
)

type Server struct {
	postHTTPService *post_http.PostHTTPService
	server          *http.Server
	address         string
	port            int
	log             *logger.Logger
	metrics         metrics.Provider
}

func NewServer(postHTTPService *post_http.PostHTTPService, address string, port int, log *logger.Logger, metrics metrics.Provider) *Server {
	return &Server{
		postHTTPService: postHTTPService,
		address:         address,
		port:            port,
		log:             log,
		metrics:         metrics,
	}
}

func (s *Server) Run() error {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	r.Use(corsMiddleware.Handler)
	r.Use(chi_middleware.RealIP)
	r.Use(blog_middleware.Logger(s.log, s.metrics))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(chi_middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/blog", http.StatusSeeOther)
	})

	s.postHTTPService.RegisterRoutes(r)

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.address, s.port),
		Handler: r,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
