package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/creatorhub/webhook-bridge/internal/adapter"
	"github.com/creatorhub/webhook-bridge/internal/config"
	"github.com/creatorhub/webhook-bridge/internal/gateway"
	"github.com/creatorhub/webhook-bridge/internal/logger"
	"github.com/creatorhub/webhook-bridge/internal/router"
	"github.com/creatorhub/webhook-bridge/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadRouterConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "event-router",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting event router")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Create delivery gateway client
	gatewayClient := gateway.NewClient(gateway.ClientConfig{
		BaseURL:         cfg.Gateway.BaseURL,
		AuthToken:       cfg.Gateway.AuthToken,
		Timeout:         cfg.Gateway.Timeout,
		RetryMaxElapsed: cfg.Gateway.RetryMaxElapsed,
	}, jsonAdapter)

	// Make sure the provider knows every broadcastable event type
	if err := gateway.RegisterEventTypes(ctx, gatewayClient); err != nil {
		logger.FatalCtx(ctx, "Failed to register event types", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Registered event type catalog")

	// Create the event consumer
	eventRouter := router.New(dataStore, gatewayClient, jsonAdapter)
	consumer, err := router.NewConsumer(router.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
		AckWaitTimeout: cfg.NATS.AckWait,
		MaxDeliver:     cfg.NATS.MaxDeliver,
	}, natsJS, eventRouter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create event consumer", zap.Error(err))
	}
	defer consumer.Close()
	logger.InfoCtx(ctx, "Event consumer created",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName))

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for consumer errors
	errCh := make(chan error, 1)

	// Start the consumer
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "consumer"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Event router stopped")
}
