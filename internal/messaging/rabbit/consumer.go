package rabbit

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nsridhar76/go-orderflow/internal/messaging"
)

// Consumer reads the order queue with a prefetch of one so at most a single
// unacknowledged message is in flight per instance.
type Consumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewConsumer(url, queue string) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", queue, err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}
	return &Consumer{conn: conn, ch: ch, queue: queue}, nil
}

// Run feeds deliveries to handler one at a time until ctx is cancelled or the
// broker closes the channel. The handler settles each delivery itself; a
// message in flight at cancellation is left unacked for broker redelivery.
func (c *Consumer) Run(ctx context.Context, handler messaging.Handler) error {
	deliveries, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %q: %w", c.queue, err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed by broker")
			}
			handler(ctx, delivery{d: d})
		}
	}
}

func (c *Consumer) Close() error {
	return c.conn.Close()
}

// delivery adapts amqp091 deliveries to messaging.Delivery.
type delivery struct {
	d amqp.Delivery
}

func (d delivery) Body() []byte { return d.d.Body }

func (d delivery) Ack() error { return d.d.Ack(false) }

// Reject nacks without requeue: the broker drops the message for good.
func (d delivery) Reject() error { return d.d.Nack(false, false) }
