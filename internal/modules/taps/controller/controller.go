package controller

import (
	"net/http"

	"kegerator-server/internal/modules/taps/repository"
	"kegerator-server/internal/observability"
)

type TapController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type tapControllerImpl struct {
	repository repository.TapRepository
	metrics    *observability.Metrics
}

func NewTapController(repository repository.TapRepository, metrics *observability.Metrics) TapController {
	return &tapControllerImpl{repository: repository, metrics: metrics}
}

func (c *tapControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", c.handleDashboard)
}
