package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"kegerator-server/internal/modules/taps/repository"
	"kegerator-server/internal/modules/taps/service"
	"kegerator-server/internal/modules/taps/views"
	"kegerator-server/internal/utils"
)

func (c *tapControllerImpl) handleDashboard(w http.ResponseWriter, r *http.Request) {
	readings, err := c.repository.LoadReadings()
	if err != nil {
		kind := "io"
		if errors.Is(err, repository.ErrReadingsParse) {
			kind = "parse"
		}
		c.metrics.ReadingLoadFailures.WithLabelValues(kind).Inc()
		slog.Error("dashboard: load tap readings failed", "kind", kind, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load tap readings")
		return
	}

	utils.WriteHTML(w, views.TapsPage{Taps: service.ToDisplaySet(readings)})
}
