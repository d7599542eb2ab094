package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is immutable once created. ProductID is a soft reference to the
// product catalog and is not verified against it.
type Order struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ProductID  uuid.UUID `json:"product_id" db:"product_id"`
	Quantity   int       `json:"quantity" db:"quantity"`
	TotalPrice float64   `json:"total_price" db:"total_price"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
