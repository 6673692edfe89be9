// Package orders implements order creation and status lookup.
package orders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nsridhar76/go-orderflow/internal/cache"
	"github.com/nsridhar76/go-orderflow/internal/domain"
	"github.com/nsridhar76/go-orderflow/internal/messaging"
	"github.com/nsridhar76/go-orderflow/internal/metrics"
	"github.com/nsridhar76/go-orderflow/internal/store"
)

type Service struct {
	store store.OrderStore
	cache cache.StatusCache
	queue messaging.QueuePublisher
	log   *slog.Logger
}

func New(st store.OrderStore, c cache.StatusCache, q messaging.QueuePublisher, log *slog.Logger) *Service {
	return &Service{store: st, cache: c, queue: q, log: log}
}

// CreateResult carries the created order and, separately, the outcome of the
// event publish. A non-nil PublishErr means the creation event was lost; the
// order itself is still created. Callers decide whether to log and continue.
type CreateResult struct {
	Order      domain.Order
	PublishErr error
}

// Create inserts a fresh order and publishes its creation event. The store
// write and the publish are independent operations, not a transaction: a
// crash between them loses the event.
func (s *Service) Create(ctx context.Context, items []string) (CreateResult, error) {
	order := domain.Order{
		ID:        uuid.NewString(),
		Status:    domain.StatusNew,
		Items:     items,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, order); err != nil {
		return CreateResult{}, fmt.Errorf("insert order: %w", err)
	}
	metrics.OrdersCreated.Inc()

	event := messaging.OrderEvent{
		OrderID:   order.ID,
		EventType: messaging.EventOrderCreated,
	}
	result := CreateResult{Order: order}
	if err := s.queue.PublishOrderCreated(ctx, event); err != nil {
		metrics.OrderEventsDropped.Inc()
		result.PublishErr = err
	}
	return result, nil
}

// StatusResult tags the status with where it came from.
type StatusResult struct {
	OrderID string
	Status  domain.OrderStatus
	Cached  bool
}

// Status serves the order status read-through: cache first, store on miss,
// repopulating the cache with the configured TTL. Cache failures degrade to
// store reads instead of failing the request. The cache is never invalidated
// on write; if statuses ever become mutable this goes stale for up to a TTL.
func (s *Service) Status(ctx context.Context, orderID string) (StatusResult, error) {
	status, ok, err := s.cache.GetStatus(ctx, orderID)
	if err != nil {
		s.log.Warn("status cache read failed", "order_id", orderID, "error", err)
	}
	if ok {
		metrics.StatusCacheHits.Inc()
		return StatusResult{OrderID: orderID, Status: domain.OrderStatus(status), Cached: true}, nil
	}
	metrics.StatusCacheMisses.Inc()

	order, err := s.store.Get(ctx, orderID)
	if err != nil {
		return StatusResult{}, err
	}
	if err := s.cache.SetStatus(ctx, orderID, string(order.Status)); err != nil {
		s.log.Warn("status cache write failed", "order_id", orderID, "error", err)
	}
	return StatusResult{OrderID: orderID, Status: order.Status, Cached: false}, nil
}
