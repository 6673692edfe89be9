package store

import (
	"context"
	"sync"

	"github.com/nsridhar76/go-orderflow/internal/domain"
)

// Memory is a mutex-guarded map, the default backend.
type Memory struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewMemory() *Memory {
	return &Memory{orders: make(map[string]domain.Order)}
}

func (m *Memory) Insert(_ context.Context, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[order.ID]; ok {
		return domain.ErrDuplicateOrder
	}
	m.orders[order.ID] = order
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}
