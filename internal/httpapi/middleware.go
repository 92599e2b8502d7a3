package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"kegerator-server/internal/observability"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler, metrics *observability.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		elapsed := time.Since(start)

		// ServeMux fills in Pattern on the request it dispatched.
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(sr.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", sr.status,
			"duration_ms", elapsed.Milliseconds(),
		)
	})
}
