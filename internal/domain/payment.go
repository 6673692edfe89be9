package domain

import (
	"errors"
	"time"
)

type PaymentStatus string

const (
	// There is no gateway behind the payment service; every valid request
	// completes.
	PaymentCompleted PaymentStatus = "completed"
)

type Payment struct {
	ID        string        `json:"payment_id"`
	OrderID   string        `json:"order_id"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// ErrInvalidPayment covers missing order IDs and missing or non-positive
// amounts. The HTTP layer maps it to 400.
var ErrInvalidPayment = errors.New("order_id and amount are required")
