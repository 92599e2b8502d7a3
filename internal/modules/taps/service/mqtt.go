package service

import (
	"fmt"
	"log/slog"

	"kegerator-server/internal/modules/taps/repository"
	"kegerator-server/internal/mqtt"
	"kegerator-server/internal/observability"
)

// registerMQTTHandler replaces the data file with every valid tap document
// received on the feed topic.
func registerMQTTHandler(subscriber mqtt.MQTTSubscriber, repo repository.TapRepository, metrics *observability.Metrics, logger *slog.Logger) {
	subscriber.SetMessageHandler(func(topic string, payload []byte) error {
		readings, err := repository.DecodeReadings(payload)
		if err != nil {
			metrics.FeedMessages.WithLabelValues("invalid").Inc()
			return fmt.Errorf("decode tap document: %w", err)
		}

		if err := repo.ReplaceReadings(readings); err != nil {
			metrics.FeedMessages.WithLabelValues("error").Inc()
			logger.Error("failed to store tap readings",
				"topic", topic,
				"error", err,
			)
			return err
		}

		metrics.FeedMessages.WithLabelValues("applied").Inc()
		logger.Debug("stored tap readings",
			"topic", topic,
			"tap_one", readings.TapOne.State,
			"tap_two", readings.TapTwo.State,
			"tap_three", readings.TapThree.State,
		)
		return nil
	})
}
