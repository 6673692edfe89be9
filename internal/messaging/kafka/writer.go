// Package kafka carries payment telemetry over the analytics stream topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/nsridhar76/go-orderflow/internal/messaging"
)

// Writer publishes payment events keyed by order ID so each order's events
// stay on one partition.
type Writer struct {
	w *kafkago.Writer
}

func NewWriter(brokers []string, topic string) *Writer {
	return &Writer{
		w: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkago.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (w *Writer) PublishPaymentProcessed(ctx context.Context, event messaging.PaymentEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal payment event: %w", err)
	}
	err = w.w.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write to %q: %w", w.w.Topic, err)
	}
	return nil
}

func (w *Writer) Close() error {
	return w.w.Close()
}
