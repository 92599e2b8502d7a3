// Command tapfeed validates a tap readings document and publishes it to the
// MQTT feed topic, where a running server picks it up and replaces its data file.
//
//	MQTT_BROKER=localhost tapfeed ./data/tap.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kegerator-server/internal/config"
	"kegerator-server/internal/logging"
	"kegerator-server/internal/modules/taps/repository"
	"kegerator-server/internal/mqtt"
)

const appName = "tapfeed"

var version = "dev"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <tap.json>\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if !cfg.FeedEnabled() {
		fmt.Fprintln(os.Stderr, "config error: MQTT_BROKER is required")
		os.Exit(1)
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1]); err != nil {
		logger.Error("publish failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, path string) error {
	payload, err := loadPayload(path)
	if err != nil {
		return err
	}

	publisher := mqtt.NewPublisher(cfg, logger)
	defer publisher.Disconnect()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := publisher.Connect(connectCtx); err != nil {
		return err
	}

	if err := publisher.Publish(payload); err != nil {
		return err
	}
	logger.Info("published tap readings", "topic", cfg.MQTTTopic, "file", path)
	return nil
}

// loadPayload rejects documents the server would refuse and re-encodes the
// rest, dropping unknown keys.
func loadPayload(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrReadingsIO, err)
	}
	readings, err := repository.DecodeReadings(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(readings)
}
