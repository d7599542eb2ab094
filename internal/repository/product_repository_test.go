package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

func newProduct(name string, price float64) *domain.Product {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: "test product",
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestProductCreateAndFind(t *testing.T) {
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	product := newProduct("Margherita", 8.5)
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	found, err := repo.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("failed to find product: %v", err)
	}
	if found.Name != product.Name || found.Price != product.Price {
		t.Errorf("retrieved product differs: %+v vs %+v", found, product)
	}
}

func TestProductFindByID_MissingIsNotFound(t *testing.T) {
	repo := NewProductRepository(testDB)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductUpdate(t *testing.T) {
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	product := newProduct("Before", 5.0)
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	product.Name = "After"
	product.Price = 7.5
	product.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	if err := repo.Update(ctx, product); err != nil {
		t.Fatalf("failed to update product: %v", err)
	}

	found, err := repo.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("failed to find product: %v", err)
	}
	if found.Name != "After" || found.Price != 7.5 {
		t.Errorf("update did not persist: %+v", found)
	}
}

func TestProductUpdate_MissingIsNotFound(t *testing.T) {
	repo := NewProductRepository(testDB)

	err := repo.Update(context.Background(), newProduct("ghost", 1.0))
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductDelete(t *testing.T) {
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	product := newProduct("Doomed", 3.0)
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	if err := repo.Delete(ctx, product.ID); err != nil {
		t.Fatalf("failed to delete product: %v", err)
	}

	_, err := repo.FindByID(ctx, product.ID)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}

	if err := repo.Delete(ctx, product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on repeated delete, got %v", err)
	}
}

func TestProductList_OrderedByCreation(t *testing.T) {
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	first := newProduct("First", 1.0)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	second := newProduct("Second", 2.0)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	second.UpdatedAt = second.CreatedAt
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list products: %v", err)
	}

	firstIdx, secondIdx := -1, -1
	for i, p := range products {
		switch p.ID {
		case first.ID:
			firstIdx = i
		case second.ID:
			secondIdx = i
		}
	}
	if firstIdx == -1 || secondIdx == -1 {
		t.Fatalf("created products missing from list")
	}
	if firstIdx > secondIdx {
		t.Errorf("products must be listed oldest first")
	}
}
