package mqtt

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kegerator-server/internal/config"
	"kegerator-server/internal/observability"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MessageHandler processes one feed payload. A returned error is logged and
// the message is dropped.
type MessageHandler func(topic string, payload []byte) error

type Subscriber struct {
	client    mqtt.Client
	cfg       config.Config
	logger    *slog.Logger
	metrics   *observability.Metrics
	mu        sync.RWMutex
	connected bool

	stopCh   chan struct{}
	stopOnce sync.Once

	handlerMu sync.RWMutex
	handler   MessageHandler
}

// MQTTSubscriber is implemented by anything that accepts a feed message handler.
type MQTTSubscriber interface {
	SetMessageHandler(handler MessageHandler)
}

func (s *Subscriber) SetMessageHandler(handler MessageHandler) {
	s.handlerMu.Lock()
	s.handler = handler
	s.handlerMu.Unlock()
}

func NewSubscriber(cfg config.Config, metrics *observability.Metrics, logger *slog.Logger) *Subscriber {
	s := &Subscriber{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		stopCh:  make(chan struct{}),
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.MQTTBroker, cfg.MQTTPort))
	opts.SetClientID(cfg.MQTTClientID)

	opts.SetCleanSession(true)

	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetMaxReconnectInterval(60 * time.Second)

	opts.SetKeepAlive(30 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	// Clean sessions drop subscriptions on reconnect, so subscribe on every connect.
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		s.setConnected(true)
		logger.Info("mqtt connected", "broker", cfg.MQTTBroker, "port", cfg.MQTTPort)
		if err := s.subscribe(c); err != nil {
			logger.Error("mqtt subscribe failed", "topic", cfg.MQTTTopic, "error", err)
		}
	})

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		s.setConnected(false)
		logger.Warn("mqtt connection lost", "error", err)
	})

	s.client = mqtt.NewClient(opts)
	return s
}

// Connect starts connecting to the broker and waits until the first
// connection succeeds, ctx is done, or Disconnect is called.
func (s *Subscriber) Connect(ctx context.Context) error {
	select {
	case <-s.stopCh:
		return fmt.Errorf("subscriber stopped")
	default:
	}

	if s.IsConnected() {
		return nil
	}

	token := s.client.Connect()

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
		case <-s.stopCh:
			return fmt.Errorf("subscriber stopped")
		default:
		}
	}
}

func (s *Subscriber) subscribe(c mqtt.Client) error {
	topic := s.cfg.MQTTTopic
	qos := byte(1)

	token := c.Subscribe(topic, qos, func(_ mqtt.Client, msg mqtt.Message) {
		s.handleMessage(msg.Topic(), msg.Payload())
	})
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("subscribe timeout for topic %s", topic)
	}
	if token.Error() != nil {
		return fmt.Errorf("subscribe to %s: %w", topic, token.Error())
	}

	s.logger.Info("subscribed to mqtt topic", "topic", topic, "qos", qos)
	return nil
}

func (s *Subscriber) handleMessage(topic string, payload []byte) {
	s.logger.Debug("received mqtt message", "topic", topic, "size", len(payload))

	s.handlerMu.RLock()
	handler := s.handler
	s.handlerMu.RUnlock()

	if handler == nil {
		s.logger.Warn("no handler for mqtt message", "topic", topic)
		return
	}
	if err := handler(topic, payload); err != nil {
		s.logger.Warn("mqtt message rejected",
			"topic", topic,
			"error", err,
		)
	}
}

// IsConnected returns whether the client is connected.
func (s *Subscriber) IsConnected() bool {
	s.mu.RLock()
	connected := s.connected
	s.mu.RUnlock()
	return connected && s.client.IsConnected()
}

// Disconnect stops the subscriber and closes the MQTT connection.
// Safe to call more than once.
func (s *Subscriber) Disconnect() {
	s.stopOnce.Do(func() { close(s.stopCh) })

	if s.client != nil && s.IsConnected() {
		token := s.client.Unsubscribe(s.cfg.MQTTTopic)
		token.WaitTimeout(2 * time.Second)
	}

	// Don't hold s.mu here; paho calls back into setConnected.
	if s.client != nil {
		s.client.Disconnect(250)
	}

	s.setConnected(false)
	s.logger.Info("mqtt subscriber disconnected")
}

func (s *Subscriber) setConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
	if s.metrics != nil {
		if v {
			s.metrics.FeedConnected.Set(1)
		} else {
			s.metrics.FeedConnected.Set(0)
		}
	}
}
