// Package messaging defines event types for the queue and stream wire
// formats, plus the capability interfaces the services publish and consume
// through.
package messaging

import "time"

// Event type constants for the event_type field.
const (
	EventOrderCreated     = "order_created"
	EventPaymentProcessed = "payment_processed"
)

// OrderEvent is the durable-queue message body for order lifecycle events.
type OrderEvent struct {
	OrderID   string `json:"order_id"`
	EventType string `json:"event_type"`
}

// PaymentEvent is the stream-topic value for payment telemetry, keyed by
// order ID on the wire.
type PaymentEvent struct {
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}
