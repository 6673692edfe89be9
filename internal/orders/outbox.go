package orders

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nsridhar76/go-orderflow/internal/messaging"
)

// Outbox decouples order creation from queue availability. It satisfies
// messaging.QueuePublisher by buffering events in memory; a relay goroutine
// publishes them in order, retrying with backoff until the broker accepts
// each one. It is not a durable outbox: events held here die with the
// process, matching the locality of the in-memory order store.
type Outbox struct {
	next messaging.QueuePublisher
	log  *slog.Logger

	mu      sync.Mutex
	pending []messaging.OrderEvent
	wake    chan struct{}
}

func NewOutbox(next messaging.QueuePublisher, log *slog.Logger) *Outbox {
	return &Outbox{
		next: next,
		log:  log,
		wake: make(chan struct{}, 1),
	}
}

// PublishOrderCreated enqueues the event for the relay. It never fails.
func (o *Outbox) PublishOrderCreated(_ context.Context, event messaging.OrderEvent) error {
	o.mu.Lock()
	o.pending = append(o.pending, event)
	o.mu.Unlock()
	select {
	case o.wake <- struct{}{}:
	default:
	}
	return nil
}

// Run drains the buffer until ctx is cancelled. Events are published oldest
// first; a failing publish blocks the queue behind it rather than reordering.
func (o *Outbox) Run(ctx context.Context) error {
	for {
		event, ok := o.peek()
		if !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-o.wake:
			}
			continue
		}
		if err := o.publishWithRetry(ctx, event); err != nil {
			return err
		}
		o.pop()
	}
}

func (o *Outbox) publishWithRetry(ctx context.Context, event messaging.OrderEvent) error {
	backoff := 100 * time.Millisecond
	for {
		err := o.next.PublishOrderCreated(ctx, event)
		if err == nil {
			return nil
		}
		o.log.Warn("outbox publish failed, retrying",
			"order_id", event.OrderID, "backoff", backoff, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff *= 2; backoff > 5*time.Second {
			backoff = 5 * time.Second
		}
	}
}

func (o *Outbox) peek() (messaging.OrderEvent, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.pending) == 0 {
		return messaging.OrderEvent{}, false
	}
	return o.pending[0], true
}

func (o *Outbox) pop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = o.pending[1:]
}
