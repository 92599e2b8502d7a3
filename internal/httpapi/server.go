package httpapi

import (
	"net/http"
	"time"

	"kegerator-server/internal/config"
	"kegerator-server/internal/observability"
)

func NewServer(cfg config.Config, mux *http.ServeMux, metrics *observability.Metrics) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           requestLogger(mux, metrics),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
