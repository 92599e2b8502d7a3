package httpapi

import (
	"net/http"

	"kegerator-server/internal/modules/taps/repository"
	"kegerator-server/internal/observability"
)

// NewMux registers the operational routes, the /static greeting and the file
// fallback. Feature modules add their own routes to the returned mux.
func NewMux(repository repository.TapRepository, staticDir string, metrics *observability.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux, repository)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /static", handleStaticGreeting)
	mux.Handle("GET /", newFileFallback(staticDir))
	return mux
}
