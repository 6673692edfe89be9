// Package store holds the order records, the only state this flow owns.
package store

import (
	"context"

	"github.com/nsridhar76/go-orderflow/internal/domain"
)

// OrderStore is the persistence capability of the order service. Insert must
// be safe under concurrent handler invocations and must refuse an ID that is
// already present, even though generated IDs make collisions unlikely.
type OrderStore interface {
	Insert(ctx context.Context, order domain.Order) error
	Get(ctx context.Context, id string) (domain.Order, error)
}
