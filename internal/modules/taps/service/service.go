package service

import (
	"log/slog"
	"math"

	"kegerator-server/internal/modules/taps/repository"
	"kegerator-server/internal/modules/taps/types"
	"kegerator-server/internal/mqtt"
	"kegerator-server/internal/observability"
)

// FullKegVolume is the state value of a full keg, in the same unit as Reading.State.
const FullKegVolume = 19.0

// ToDisplay converts a raw reading into its display form. Percent is not
// clamped: a state above FullKegVolume or below zero shows as is.
func ToDisplay(r types.Reading) types.DisplayReading {
	return types.DisplayReading{
		Name:    r.Name,
		Percent: math.Round(r.State / FullKegVolume * 100.0),
		Volume:  r.State,
	}
}

func ToDisplaySet(r types.Readings) types.DisplaySet {
	return types.DisplaySet{
		TapOne:   ToDisplay(r.TapOne),
		TapTwo:   ToDisplay(r.TapTwo),
		TapThree: ToDisplay(r.TapThree),
	}
}

type Service struct {
	repository repository.TapRepository
	metrics    *observability.Metrics
	logger     *slog.Logger
}

func NewService(repository repository.TapRepository, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{repository: repository, metrics: metrics, logger: logger}
}

// Register attaches the tap feed handler to the subscriber.
func (s *Service) Register(subscriber mqtt.MQTTSubscriber) {
	registerMQTTHandler(subscriber, s.repository, s.metrics, s.logger)
}
