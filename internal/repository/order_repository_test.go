package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

func TestOrderCreateAndList(t *testing.T) {
	repo := NewOrderRepository(testDB)
	ctx := context.Background()

	order := &domain.Order{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		Quantity:   2,
		TotalPrice: 19.98,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("failed to create order: %v", err)
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list orders: %v", err)
	}

	var found *domain.Order
	for _, o := range orders {
		if o.ID == order.ID {
			found = o
			break
		}
	}
	if found == nil {
		t.Fatalf("created order missing from list")
	}
	if found.ProductID != order.ProductID || found.Quantity != 2 || found.TotalPrice != 19.98 {
		t.Errorf("retrieved order differs: %+v vs %+v", found, order)
	}
}

func TestOrderList_OrderedByCreation(t *testing.T) {
	repo := NewOrderRepository(testDB)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	first := &domain.Order{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, TotalPrice: 1.0, CreatedAt: base}
	second := &domain.Order{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, TotalPrice: 2.0, CreatedAt: base.Add(time.Second)}

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("failed to create order: %v", err)
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list orders: %v", err)
	}

	firstIdx, secondIdx := -1, -1
	for i, o := range orders {
		switch o.ID {
		case first.ID:
			firstIdx = i
		case second.ID:
			secondIdx = i
		}
	}
	if firstIdx == -1 || secondIdx == -1 {
		t.Fatalf("created orders missing from list")
	}
	if firstIdx > secondIdx {
		t.Errorf("orders must be listed oldest first")
	}
}
