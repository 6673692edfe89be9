// Package analytics is a pass-through observer of the payment stream: each
// event is decoded and logged, nothing is transformed or persisted.
package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/nsridhar76/go-orderflow/internal/messaging"
	"github.com/nsridhar76/go-orderflow/internal/metrics"
)

// Reader is the slice of kafka-go's Reader this service needs.
type Reader interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
}

type Service struct {
	reader Reader
	log    *slog.Logger
}

func New(reader Reader, log *slog.Logger) *Service {
	return &Service{reader: reader, log: log}
}

// Run consumes until ctx is cancelled. Offset commits lag processing, so an
// event can be logged twice after a crash but is never silently skipped.
// Undecodable values are logged raw and passed over.
func (s *Service) Run(ctx context.Context) error {
	for {
		msg, err := s.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ctx.Err()
			}
			return err
		}

		var event messaging.PaymentEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			s.log.Warn("skipping undecodable payment event",
				"key", string(msg.Key), "value", string(msg.Value), "error", err)
			continue
		}
		metrics.AnalyticsEvents.Inc()
		s.log.Info("payment event received",
			"payment_id", event.PaymentID,
			"order_id", event.OrderID,
			"amount", event.Amount,
			"status", event.Status,
			"timestamp", event.Timestamp,
		)
	}
}
