package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kemasindo/storefront/kafka"
	"github.com/kemasindo/storefront/pkg/logger"
	"github.com/kemasindo/storefront/pkg/tracing"
)

// The notifier consumes cart events and turns them into user-facing
// notification log lines. A real deployment would fan these out to a
// websocket or push channel; the surface contract is the same either
// way: one success notification per completed cart action.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "notifier-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting notifier service")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "notifier")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicCartEvents})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeCartItemAdded, handleCartItemAdded)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start consumer")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down notifier...")
}

func handleCartItemAdded(ctx context.Context, event kafka.CartItemAddedEvent) error {
	logger.Info(ctx).
		Str("event_id", event.EventID).
		Uint("user_id", event.UserID).
		Str("product", event.ProductName).
		Int("quantity", event.Quantity).
		Msgf("%s added to cart!", event.ProductName)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
