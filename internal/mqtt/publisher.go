package mqtt

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kegerator-server/internal/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher pushes tap reading documents to the feed topic.
type Publisher struct {
	client    mqtt.Client
	cfg       config.Config
	logger    *slog.Logger
	mu        sync.RWMutex
	connected bool

	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewPublisher(cfg config.Config, logger *slog.Logger) *Publisher {
	p := &Publisher{
		cfg:    cfg,
		logger: logger,
		stopCh: make(chan struct{}),
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.MQTTBroker, cfg.MQTTPort))
	opts.SetClientID(cfg.MQTTClientID + "-publisher")
	opts.SetCleanSession(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(2 * time.Second)
	opts.SetKeepAlive(30 * time.Second)

	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		p.setConnected(true)
		logger.Info("mqtt connected", "broker", cfg.MQTTBroker, "port", cfg.MQTTPort)
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		p.setConnected(false)
		logger.Warn("mqtt connection lost", "error", err)
	})

	p.client = mqtt.NewClient(opts)
	return p
}

// Connect waits for the first connection, ctx, or Disconnect.
func (p *Publisher) Connect(ctx context.Context) error {
	select {
	case <-p.stopCh:
		return fmt.Errorf("publisher stopped")
	default:
	}

	if p.IsConnected() {
		return nil
	}

	token := p.client.Connect()

	const poll = 200 * time.Millisecond
	for {
		if token.WaitTimeout(poll) {
			if err := token.Error(); err != nil {
				return fmt.Errorf("mqtt connect: %w", err)
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.stopCh:
			return fmt.Errorf("publisher stopped")
		default:
		}
	}
}

// Publish sends payload to the configured topic as a retained QoS 1 message,
// so a server that subscribes later still receives the latest document.
func (p *Publisher) Publish(payload []byte) error {
	if !p.IsConnected() {
		return fmt.Errorf("mqtt publisher not connected")
	}

	topic := p.cfg.MQTTTopic
	token := p.client.Publish(topic, 1, true, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish timeout for topic %s", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	p.logger.Debug("published tap readings", "topic", topic, "size", len(payload))
	return nil
}

func (p *Publisher) IsConnected() bool {
	p.mu.RLock()
	connected := p.connected
	p.mu.RUnlock()
	return connected && p.client.IsConnected()
}

// Disconnect is idempotent. Connect fails after it.
func (p *Publisher) Disconnect() {
	p.stopOnce.Do(func() { close(p.stopCh) })

	if p.client != nil {
		p.client.Disconnect(250)
	}

	p.setConnected(false)
	p.logger.Info("mqtt publisher disconnected")
}

func (p *Publisher) setConnected(v bool) {
	p.mu.Lock()
	p.connected = v
	p.mu.Unlock()
}
