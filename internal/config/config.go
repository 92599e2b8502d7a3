package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	HTTPAddr string

	// TapDataPath is the JSON document read on every dashboard request.
	// Relative paths are resolved against the process working directory at request time.
	TapDataPath string

	// StaticDir is the absolute path of the directory served for unmatched GET requests.
	StaticDir string

	// MQTTBroker empty disables the tap reading feed.
	MQTTBroker   string
	MQTTPort     int
	MQTTTopic    string
	MQTTClientID string
}

// FeedEnabled reports whether the MQTT tap reading feed is configured.
func (c Config) FeedEnabled() bool {
	return c.MQTTBroker != ""
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "debug"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = "127.0.0.1:8000"
	}

	tapDataPath := strings.TrimSpace(os.Getenv("TAP_DATA_PATH"))
	if tapDataPath == "" {
		tapDataPath = "./data/tap.json"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "."
	}
	staticDir, err = filepath.Abs(staticDir)
	if err != nil {
		return Config{}, fmt.Errorf("STATIC_DIR %q: %w", staticDir, err)
	}

	mqttBroker := strings.TrimSpace(os.Getenv("MQTT_BROKER"))

	mqttPortStr := strings.TrimSpace(os.Getenv("MQTT_PORT"))
	if mqttPortStr == "" {
		mqttPortStr = "1883"
	}
	mqttPort, err := strconv.Atoi(mqttPortStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid MQTT_PORT %q: %w", mqttPortStr, err)
	}
	if mqttPort <= 0 || mqttPort > 65535 {
		return Config{}, fmt.Errorf("invalid MQTT_PORT %d (allowed: 1-65535)", mqttPort)
	}

	mqttTopic := strings.TrimSpace(os.Getenv("MQTT_TOPIC"))
	if mqttTopic == "" {
		mqttTopic = "kegerator/taps"
	}

	mqttClientID := strings.TrimSpace(os.Getenv("MQTT_CLIENT_ID"))
	if mqttClientID == "" {
		mqttClientID = "kegerator-server"
	}

	return Config{
		AppEnv:       appEnv,
		LogLevel:     level,
		HTTPAddr:     httpAddr,
		TapDataPath:  tapDataPath,
		StaticDir:    staticDir,
		MQTTBroker:   mqttBroker,
		MQTTPort:     mqttPort,
		MQTTTopic:    mqttTopic,
		MQTTClientID: mqttClientID,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
