// Command paymentd runs the payment service: HTTP API and the
// analytics_orders producer.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nsridhar76/go-orderflow/internal/config"
	"github.com/nsridhar76/go-orderflow/internal/httpapi"
	"github.com/nsridhar76/go-orderflow/internal/logging"
	"github.com/nsridhar76/go-orderflow/internal/messaging/kafka"
	"github.com/nsridhar76/go-orderflow/internal/metrics"
	"github.com/nsridhar76/go-orderflow/internal/payments"
)

func main() {
	log := logging.New(os.Getenv("LOG_LEVEL"))
	cfg := config.LoadPayment()
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	writer := kafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer writer.Close()

	svc := payments.New(writer)
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewPaymentRouter(svc, log),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("payment service listening", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
	log.Info("payment service stopped")
}
