package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"kegerator-server/internal/config"
	"kegerator-server/internal/httpapi"
	"kegerator-server/internal/modules/signup"
	signupviews "kegerator-server/internal/modules/signup/views"
	"kegerator-server/internal/modules/taps"
	"kegerator-server/internal/modules/taps/repository"
	tapsviews "kegerator-server/internal/modules/taps/views"
	"kegerator-server/internal/mqtt"
	"kegerator-server/internal/observability"
)

func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	logger.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"tapDataPath", cfg.TapDataPath,
		"staticDir", cfg.StaticDir,
		"mqttBroker", cfg.MQTTBroker,
		"mqttPort", cfg.MQTTPort,
		"mqttTopic", cfg.MQTTTopic,
	)

	if err := tapsviews.LoadTemplates(); err != nil {
		return err
	}
	if err := signupviews.LoadTemplates(); err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	repo := repository.NewRepository(cfg.TapDataPath)
	mux := httpapi.NewMux(repo, cfg.StaticDir, metrics)
	signup.RegisterFeature(mux, logger)

	var subscriber *mqtt.Subscriber
	if cfg.FeedEnabled() {
		// Set the handler before Connect so OnConnectHandler can subscribe
		// before the broker delivers retained messages.
		subscriber = mqtt.NewSubscriber(cfg, metrics, logger)
		taps.RegisterFeature(mux, repo, subscriber, metrics, logger)

		connectCtx, connectCancel := context.WithTimeout(ctx, 5*time.Second)
		err := subscriber.Connect(connectCtx)
		connectCancel()
		if err != nil {
			// Autoreconnect keeps retrying; the page keeps serving the last file.
			logger.Warn("mqtt connection failed (continuing without feed)", "error", err)
		}
	} else {
		taps.RegisterFeature(mux, repo, nil, metrics, logger)
		logger.Info("mqtt feed disabled")
	}

	srv := httpapi.NewServer(cfg, mux, metrics)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if subscriber != nil {
			subscriber.Disconnect()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if subscriber != nil {
		logger.Info("mqtt disconnecting")
		subscriber.Disconnect()
	}

	logger.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err := <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
