// changefeed tails the workforce change topic and logs every event.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gartstein/workforce/internal/workforce/events"
	"go.uber.org/zap"
)

func main() {
	brokers := flag.String("brokers", envOr("KAFKA_BROKERS", "localhost:9092"), "comma separated Kafka brokers")
	topic := flag.String("topic", envOr("TOPIC", events.DefaultTopic), "topic to consume")
	group := flag.String("group", "workforce-changefeed", "consumer group ID")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := events.NewConsumer(strings.Split(*brokers, ","), *group, *topic, logger)
	defer consumer.Close()

	consumer.RegisterHandler(func(_ context.Context, ev events.Event) error {
		logger.Info("change event",
			zap.String("id", ev.ID.String()),
			zap.String("type", string(ev.Type)),
			zap.String("key", ev.Key()),
			zap.Time("occurred_at", ev.OccurredAt),
			zap.Any("payload", ev.Payload),
		)
		return nil
	})

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("failed to start consumer", zap.Error(err))
	}
	logger.Info("consuming change events", zap.String("topic", *topic), zap.String("group", *group))

	<-consumer.Done()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
