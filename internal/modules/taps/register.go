package taps

import (
	"log/slog"
	"net/http"

	"kegerator-server/internal/modules/taps/controller"
	"kegerator-server/internal/modules/taps/repository"
	"kegerator-server/internal/modules/taps/service"
	"kegerator-server/internal/mqtt"
	"kegerator-server/internal/observability"
)

// RegisterFeature wires the tap dashboard routes and, when subscriber is not
// nil, the MQTT feed that keeps the data file current.
func RegisterFeature(mux *http.ServeMux, repo repository.TapRepository, subscriber mqtt.MQTTSubscriber, metrics *observability.Metrics, logger *slog.Logger) {
	tapController := controller.NewTapController(repo, metrics)
	tapController.RegisterRoutes(mux)

	if subscriber != nil {
		tapService := service.NewService(repo, metrics, logger)
		tapService.Register(subscriber)
	}
}
