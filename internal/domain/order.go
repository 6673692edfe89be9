// Package domain holds the order and payment records shared by the services.
package domain

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	// StatusNew is the only status this flow ever writes. The downstream
	// states exist so the enum does not have to change when payment capture
	// starts mutating orders.
	StatusNew       OrderStatus = "new"
	StatusPaid      OrderStatus = "paid"
	StatusCancelled OrderStatus = "cancelled"
)

// Order is owned by the order store and mutated only by the order service.
type Order struct {
	ID        string      `json:"id"`
	Status    OrderStatus `json:"status"`
	Items     []string    `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("order already exists")
)
