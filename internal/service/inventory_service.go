package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"github.com/google/uuid"
)

// InventoryService defines the interface for inventory business logic
type InventoryService interface {
	List(ctx context.Context) ([]*domain.InventoryRecord, error)
	Get(ctx context.Context, productID uuid.UUID) (*domain.InventoryRecord, error)
	Ensure(ctx context.Context, productID uuid.UUID, quantity int) (record *domain.InventoryRecord, created bool, err error)
	SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error)
	Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new instance of InventoryService
func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

// List returns all inventory records
func (s *inventoryService) List(ctx context.Context) ([]*domain.InventoryRecord, error) {
	records, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return records, nil
}

// Get returns the inventory record for a product
func (s *inventoryService) Get(ctx context.Context, productID uuid.UUID) (*domain.InventoryRecord, error) {
	record, err := s.inventoryRepo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find inventory: %w", err)
	}
	return record, nil
}

// Ensure creates an inventory record for the product if none exists and
// reports whether one was created. Repeated calls for the same product
// return the existing record untouched, including when two creates race
// on the product_id unique constraint.
func (s *inventoryService) Ensure(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, bool, error) {
	existing, err := s.inventoryRepo.FindByProductID(ctx, productID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrInventoryNotFound) {
		return nil, false, fmt.Errorf("failed to check existing inventory: %w", err)
	}

	record := &domain.InventoryRecord{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.inventoryRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrInventoryExists) {
			// Lost the race to a concurrent create; the winner's record
			// is the canonical one.
			existing, findErr := s.inventoryRepo.FindByProductID(ctx, productID)
			if findErr != nil {
				return nil, false, fmt.Errorf("failed to load concurrently created inventory: %w", findErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create inventory record: %w", err)
	}

	return record, true, nil
}

// SetQuantity overwrites the stock counter for a product. There is no
// lower bound here; only Reserve enforces non-negativity.
func (s *inventoryService) SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error) {
	record, err := s.inventoryRepo.SetQuantity(ctx, productID, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to set quantity: %w", err)
	}
	return record, nil
}

// Reserve decrements stock for a product if enough is available.
// Failure leaves the record untouched.
func (s *inventoryService) Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error) {
	record, err := s.inventoryRepo.Reserve(ctx, productID, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to reserve inventory: %w", err)
	}
	return record, nil
}
