package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryNotifier is the fire-and-forget side of the inventory API:
// the product service calls it after persisting a product and ignores
// the outcome beyond logging.
type InventoryNotifier interface {
	EnsureRecord(ctx context.Context, productID uuid.UUID, quantity int) error
}

// ProductUpdate carries the fields of a partial product update; nil
// fields are left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
}

// ProductService defines the interface for product business logic
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, name, description string, price float64) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
	notifier    InventoryNotifier
	logger      *zap.Logger
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository, notifier InventoryNotifier, logger *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// List returns all products
func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Create persists a new product and then notifies the inventory service
// so it can initialize a zero-stock record. The notify is deliberately
// best-effort: a failure is logged and the product stands. This is the
// opposite of order creation, which blocks on inventory.
func (s *productService) Create(ctx context.Context, name, description string, price float64) (*domain.Product, error) {
	product := &domain.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.notifier.EnsureRecord(ctx, product.ID, 0); err != nil {
		s.logger.Warn("Failed to notify inventory of new product",
			zap.String("product_id", product.ID.String()),
			zap.Error(err),
		)
	} else {
		s.logger.Debug("Inventory service notified", zap.String("product_id", product.ID.String()))
	}

	return product, nil
}

// Update applies a partial update to a product
func (s *productService) Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product. Inventory records and orders referencing it
// are not touched.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
