package noop

import (
	"context"

	"github.com/nsridhar76/go-orderflow/internal/messaging"
)

// Publisher is a no-op QueuePublisher and StreamPublisher used when a broker
// is not configured. Events are silently dropped.
type Publisher struct{}

func (Publisher) PublishOrderCreated(_ context.Context, _ messaging.OrderEvent) error { return nil }

func (Publisher) PublishPaymentProcessed(_ context.Context, _ messaging.PaymentEvent) error {
	return nil
}
