package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nsridhar76/go-orderflow/internal/domain"
)

// Postgres backs the order store with a real database. The demo runs on the
// in-memory store; this is the port suggested for anything longer-lived.
//
// Expected schema:
//
//	CREATE TABLE orders (
//	    id         TEXT PRIMARY KEY,
//	    status     TEXT NOT NULL,
//	    items      TEXT[] NOT NULL DEFAULT '{}',
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Insert(ctx context.Context, order domain.Order) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO orders (id, status, items, created_at) VALUES ($1, $2, $3, $4)`,
		order.ID, order.Status, order.Items, order.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicateOrder
	}
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order
	err := p.pool.QueryRow(ctx,
		`SELECT id, status, items, created_at FROM orders WHERE id = $1`, id,
	).Scan(&order.ID, &order.Status, &order.Items, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}
