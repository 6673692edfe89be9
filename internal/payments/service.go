// Package payments validates payment requests and emits payment telemetry.
// There is no gateway behind it; a valid request always completes.
package payments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nsridhar76/go-orderflow/internal/domain"
	"github.com/nsridhar76/go-orderflow/internal/messaging"
	"github.com/nsridhar76/go-orderflow/internal/metrics"
)

type Service struct {
	stream messaging.StreamPublisher
}

func New(stream messaging.StreamPublisher) *Service {
	return &Service{stream: stream}
}

// Result carries the completed payment and, separately, the outcome of the
// analytics publish. Payment correctness does not depend on analytics
// availability: a non-nil PublishErr still means the payment happened.
type Result struct {
	Payment    domain.Payment
	PublishErr error
}

// Process validates the request, synthesizes a completed payment, and
// publishes a payment_processed event keyed by order ID.
func (s *Service) Process(ctx context.Context, orderID string, amount *float64) (Result, error) {
	if orderID == "" || amount == nil || *amount <= 0 {
		return Result{}, domain.ErrInvalidPayment
	}

	payment := domain.Payment{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Amount:    *amount,
		Status:    domain.PaymentCompleted,
		CreatedAt: time.Now().UTC(),
	}
	metrics.PaymentsProcessed.Inc()

	event := messaging.PaymentEvent{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		Amount:    payment.Amount,
		Status:    string(payment.Status),
		EventType: messaging.EventPaymentProcessed,
		Timestamp: payment.CreatedAt,
	}
	result := Result{Payment: payment}
	if err := s.stream.PublishPaymentProcessed(ctx, event); err != nil {
		result.PublishErr = err
	}
	return result, nil
}
