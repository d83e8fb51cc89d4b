package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"

	"blogd/internal/logger"
	"blogd/internal/metrics"
)

// Logger logs every request and feeds the request counters. The metrics path
// label is the chi route pattern, not the raw URL, to keep cardinality bounded.
func Logger(log *logger.Logger, metricsProvider metrics.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			routePattern := chi.RouteContext(r.Context()).RoutePattern()
			if routePattern == "" {
				routePattern = "unmatched"
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			metricsProvider.IncrementHTTPRequests(r.Method, routePattern, strconv.Itoa(status))
			metricsProvider.RecordHTTPRequestDuration(r.Method, routePattern, duration)

			log.Info("Request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", duration),
			)
		})
	}
}
