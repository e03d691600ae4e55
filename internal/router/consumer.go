package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/creatorhub/webhook-bridge/internal/adapter"
	"github.com/creatorhub/webhook-bridge/internal/domain"
	"github.com/creatorhub/webhook-bridge/internal/logger"
)

// subjectPrefix is stripped from subjects to recover the topic.
const subjectPrefix = "events."

// recordKeyHeader carries the serialized record key alongside the
// record value.
const recordKeyHeader = "Event-Key"

// Config holds the configuration for the event consumer
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Consumer pulls tenant domain events off the stream and feeds them to
// the router.
type Consumer interface {
	// Run starts consuming until the context is canceled
	Run(ctx context.Context) error
	// Close closes the consumer and cleans up resources
	Close()
}

type consumer struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	router *Router
	config Config
}

// NewConsumer connects to the stream and creates a consumer feeding
// the given router.
func NewConsumer(cfg Config, natsJS adapter.NatsJetStream, r *Router) (Consumer, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &consumer{
		nc:     nc,
		js:     js,
		router: r,
		config: cfg,
	}, nil
}

// Run starts the event consumer
func (c *consumer) Run(ctx context.Context) error {
	logger.Info("Starting event consumer",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWaitTimeout,
		MaxDeliver:    c.config.MaxDeliver,
		FilterSubject: subjectPrefix + ">",
	}

	cons, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := cons.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := cons.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event consumer")
			return ctx.Err()
		case msg := <-msgChan:
			// Spawn goroutine to handle message asynchronously
			go c.handleMessage(ctx, msg)
		}
	}
}

// handleMessage routes a single stream message and acknowledges it
// according to the outcome: Term for records that can never succeed,
// Nak for transient failures, Ack otherwise.
func (c *consumer) handleMessage(ctx context.Context, msg adapter.Message) {
	topic, err := domain.ParseTopic(strings.TrimPrefix(msg.Subject(), subjectPrefix))
	if err != nil {
		logger.WarnCtx(ctx, "terminating record on unknown topic", zap.String("subject", msg.Subject()))
		c.term(msg)
		return
	}

	env := domain.Envelope{
		Topic: topic,
		Key:   []byte(msg.Headers().Get(recordKeyHeader)),
		Value: msg.Data(),
	}

	err = c.router.Dispatch(ctx, env)
	switch {
	case err == nil:
		c.ack(msg)

	case errors.Is(err, domain.ErrNoSubscribers):
		// Expected for projects without webhooks
		logger.DebugCtx(ctx, "no subscribers for record", zap.String("subject", msg.Subject()))
		c.ack(msg)

	case errors.Is(err, ErrMalformedRecord), errors.Is(err, domain.ErrUnknownTopic):
		logger.ErrorCtx(ctx, err, zap.String("subject", msg.Subject()))
		c.term(msg)

	case errors.Is(err, domain.ErrDataIntegrity):
		// Redelivery cannot repair corrupt directory data
		logger.ErrorCtx(ctx, err, zap.String("subject", msg.Subject()))
		c.term(msg)

	default:
		logger.ErrorCtx(ctx, err, zap.String("subject", msg.Subject()))
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
	}
}

func (c *consumer) ack(msg adapter.Message) {
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

func (c *consumer) term(msg adapter.Message) {
	if err := msg.Term(); err != nil {
		logger.Error(err, zap.String("message", "Failed to terminate message"))
	}
}

// Close closes the consumer and cleans up resources
func (c *consumer) Close() {
	if c.nc == nil {
		return
	}

	c.nc.Close()
}
