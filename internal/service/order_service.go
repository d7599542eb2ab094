package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/client"
	"storefront/internal/domain"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInsufficientStock is relayed verbatim from the inventory
	// service when a reservation is refused.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInventoryUnavailable is synthesized when the reserve call fails
	// at the transport level; the root cause is logged, not exposed.
	ErrInventoryUnavailable = errors.New("inventory service unavailable")
)

// InventoryReserver is the blocking side of the inventory API: the
// outcome of Reserve gates whether an order is persisted at all.
type InventoryReserver interface {
	Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error)
}

// OrderService defines the interface for order business logic
type OrderService interface {
	List(ctx context.Context) ([]*domain.Order, error)
	Create(ctx context.Context, productID uuid.UUID, quantity int, totalPrice float64) (*domain.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	reserver  InventoryReserver
	logger    *zap.Logger
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orderRepo repository.OrderRepository, reserver InventoryReserver, logger *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		reserver:  reserver,
		logger:    logger,
	}
}

// List returns all orders
func (s *orderService) List(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Create runs the order protocol: reserve stock synchronously, and only
// persist the order if the reservation succeeded. A refused reservation
// and an unreachable inventory service are distinct failures, and in
// neither case is an order record written.
//
// There is no retry, compensation, or idempotency key. If the inventory
// service commits a reservation but the response is lost, a client
// retry will reserve again with no matching order for the first
// decrement. Known gap, kept to match the existing contract.
func (s *orderService) Create(ctx context.Context, productID uuid.UUID, quantity int, totalPrice float64) (*domain.Order, error) {
	if _, err := s.reserver.Reserve(ctx, productID, quantity); err != nil {
		if errors.Is(err, client.ErrInsufficientStock) {
			s.logger.Info("Order rejected: reservation refused",
				zap.String("product_id", productID.String()),
				zap.Int("quantity", quantity),
			)
			return nil, ErrInsufficientStock
		}
		s.logger.Error("Order rejected: inventory service unreachable",
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
		return nil, ErrInventoryUnavailable
	}

	order := &domain.Order{
		ID:         uuid.New(),
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: totalPrice,
		CreatedAt:  time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("product_id", productID.String()),
		zap.Int("quantity", quantity),
	)

	return order, nil
}
