// Package notifier consumes order events and performs the notification side
// effects. Delivery is at-least-once: a message is acknowledged only after
// its side effects complete, so a crash in between causes redelivery.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nsridhar76/go-orderflow/internal/messaging"
	"github.com/nsridhar76/go-orderflow/internal/metrics"
)

// Sender performs the notification side effects for one order event.
type Sender interface {
	Notify(ctx context.Context, event messaging.OrderEvent) error
}

type Service struct {
	sender Sender
	log    *slog.Logger
}

func New(sender Sender, log *slog.Logger) *Service {
	return &Service{sender: sender, log: log}
}

// Handle settles one delivery. Malformed bodies and failed side effects are
// both rejected without requeue: the message is dropped for good rather than
// looping as poison. There is no retry tier and no dead-letter queue, so a
// transient downstream fault loses the message too; the drop is logged at
// ERROR to keep the loss visible.
func (s *Service) Handle(ctx context.Context, d messaging.Delivery) {
	var event messaging.OrderEvent
	if err := json.Unmarshal(d.Body(), &event); err != nil {
		s.log.Error("dropping malformed order event", "error", err)
		s.reject(d)
		return
	}

	if err := s.sender.Notify(ctx, event); err != nil {
		s.log.Error("dropping order event, notification failed",
			"order_id", event.OrderID, "error", err)
		s.reject(d)
		return
	}

	if err := d.Ack(); err != nil {
		s.log.Error("ack failed", "order_id", event.OrderID, "error", err)
		return
	}
	metrics.NotificationsSent.Inc()
	s.log.Info("order notification acknowledged", "order_id", event.OrderID)
}

func (s *Service) reject(d messaging.Delivery) {
	metrics.NotificationsDropped.Inc()
	if err := d.Reject(); err != nil {
		s.log.Error("reject failed", "error", err)
	}
}

// LogSender models the email and SMS delivery the demo never really does.
type LogSender struct {
	Log *slog.Logger
}

func (l LogSender) Notify(_ context.Context, event messaging.OrderEvent) error {
	l.Log.Info("received new order, starting notification run",
		"order_id", event.OrderID, "event_type", event.EventType)
	l.Log.Info("email sent to customer", "order_id", event.OrderID)
	l.Log.Info("sms sent to customer", "order_id", event.OrderID)
	return nil
}
