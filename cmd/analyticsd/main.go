// Command analyticsd tails the analytics_orders topic and logs every
// payment event it sees.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsridhar76/go-orderflow/internal/analytics"
	"github.com/nsridhar76/go-orderflow/internal/config"
	"github.com/nsridhar76/go-orderflow/internal/logging"
	"github.com/nsridhar76/go-orderflow/internal/messaging/kafka"
	"github.com/nsridhar76/go-orderflow/internal/metrics"
)

func main() {
	log := logging.New(os.Getenv("LOG_LEVEL"))
	cfg := config.LoadAnalytics()
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := kafka.NewGroupReader(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)
	defer reader.Close()

	svc := analytics.New(reader, log)

	log.Info("analytics service consuming", "topic", cfg.Kafka.Topic, "group", cfg.Kafka.GroupID)
	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
	log.Info("analytics service stopped")
}
