// Command notifierd consumes order_events and performs the notification
// side effects, one message in flight at a time.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsridhar76/go-orderflow/internal/config"
	"github.com/nsridhar76/go-orderflow/internal/logging"
	"github.com/nsridhar76/go-orderflow/internal/messaging/rabbit"
	"github.com/nsridhar76/go-orderflow/internal/metrics"
	"github.com/nsridhar76/go-orderflow/internal/notifier"
)

func main() {
	log := logging.New(os.Getenv("LOG_LEVEL"))
	cfg := config.LoadNotifier()
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbit.NewConsumer(cfg.Rabbit.URL, cfg.Rabbit.Queue)
	if err != nil {
		log.Error("rabbitmq unavailable", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	svc := notifier.New(notifier.LogSender{Log: log}, log)

	log.Info("notification service waiting for messages", "queue", cfg.Rabbit.Queue)
	if err := consumer.Run(ctx, svc.Handle); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
	log.Info("notification service stopped")
}
