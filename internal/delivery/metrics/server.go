package metrics_server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogd/internal/logger"
)

type MetricsServer struct {
	server *http.Server
	log    *logger.Logger
	port   int
}

func NewMetricsServer(address string, port int, log *logger.Logger) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", address, port),
			Handler: mux,
		},
		log:  log,
		port: port,
	}
}

func (s *MetricsServer) Run() error {
	s.log.Info("Starting metrics server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
