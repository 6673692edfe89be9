package messaging

import "context"

// QueuePublisher sends order events to the durable queue. Implementations
// must persist messages so they survive a broker restart.
type QueuePublisher interface {
	PublishOrderCreated(ctx context.Context, event OrderEvent) error
}

// StreamPublisher appends payment events to the stream topic, keyed by order
// ID so one order's events land on one partition.
type StreamPublisher interface {
	PublishPaymentProcessed(ctx context.Context, event PaymentEvent) error
}

// Delivery is one in-flight queue message. Ack confirms processing; Reject
// discards the message permanently (no requeue, no dead-letter).
type Delivery interface {
	Body() []byte
	Ack() error
	Reject() error
}

// Handler processes a single delivery and is responsible for settling it.
type Handler func(ctx context.Context, d Delivery)
