package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryRecord tracks the stock level for a single product.
// ProductID is a soft reference: the inventory service never checks
// that the product actually exists in the catalog.
type InventoryRecord struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
