// Package cache fronts order status reads with an expiring key-value store.
package cache

import "context"

// StatusCache is read-through: absence is not an error, the store stays
// authoritative and the caller repopulates on miss.
type StatusCache interface {
	GetStatus(ctx context.Context, orderID string) (status string, ok bool, err error)
	SetStatus(ctx context.Context, orderID, status string) error
}

// Key returns the cache key for an order, namespaced so the database can be
// shared with other services.
func Key(orderID string) string {
	return "order_status:" + orderID
}
