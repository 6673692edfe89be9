// Command orderd runs the order service: HTTP API, order store, status
// cache, and the order_events publisher.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nsridhar76/go-orderflow/internal/cache"
	"github.com/nsridhar76/go-orderflow/internal/config"
	"github.com/nsridhar76/go-orderflow/internal/httpapi"
	"github.com/nsridhar76/go-orderflow/internal/logging"
	"github.com/nsridhar76/go-orderflow/internal/messaging"
	"github.com/nsridhar76/go-orderflow/internal/messaging/noop"
	"github.com/nsridhar76/go-orderflow/internal/messaging/rabbit"
	"github.com/nsridhar76/go-orderflow/internal/metrics"
	"github.com/nsridhar76/go-orderflow/internal/orders"
	"github.com/nsridhar76/go-orderflow/internal/store"
)

func main() {
	log := logging.New(os.Getenv("LOG_LEVEL"))
	cfg := config.LoadOrder()
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var orderStore store.OrderStore = store.NewMemory()
	if cfg.PostgresDSN != "" {
		pg, err := store.NewPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres unavailable", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		orderStore = pg
		log.Info("using postgres order store")
	}

	statusCache := cache.NewRedis(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.CacheTTL)
	defer statusCache.Close()

	var queue messaging.QueuePublisher
	publisher, err := rabbit.NewPublisher(cfg.Rabbit.URL, cfg.Rabbit.Queue)
	if err != nil {
		// Order creation must not depend on the broker. Without a
		// connection events are dropped, same as a failed publish.
		log.Error("rabbitmq unavailable, order events will be dropped", "error", err)
		queue = noop.Publisher{}
	} else {
		defer publisher.Close()
		queue = publisher
	}

	if cfg.OutboxEnabled {
		outbox := orders.NewOutbox(queue, log)
		go func() {
			if err := outbox.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("outbox relay stopped", "error", err)
			}
		}()
		queue = outbox
		log.Info("outbox relay enabled")
	}

	svc := orders.New(orderStore, statusCache, queue, log)
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewOrderRouter(svc, log),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("order service listening", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
	log.Info("order service stopped")
}
