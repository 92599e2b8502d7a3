package httpapi

import (
	"log/slog"
	"net/http"

	"kegerator-server/internal/modules/taps/repository"
	"kegerator-server/internal/utils"
)

type healthchecker interface {
	handleHealthz(w http.ResponseWriter, r *http.Request)
}

type healthcheckerImpl struct {
	repository repository.TapRepository
}

func NewHealthchecker(repository repository.TapRepository) healthchecker {
	return &healthcheckerImpl{repository: repository}
}

func (h *healthcheckerImpl) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repository.LoadReadings(); err != nil {
		slog.Error("failed to read tap data file", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to read tap data file")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func registerHealthcheck(mux *http.ServeMux, repository repository.TapRepository) {
	healthchecker := NewHealthchecker(repository)
	mux.HandleFunc("GET /healthz", healthchecker.handleHealthz)
}
