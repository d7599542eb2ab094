package transport

import (
	"errors"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateOrderRequest represents the order creation payload. All three
// fields are required and validated before any call leaves the service.
type CreateOrderRequest struct {
	ProductID  string   `json:"product_id" validate:"required,uuid"`
	Quantity   *int     `json:"quantity" validate:"required,gt=0"`
	TotalPrice *float64 `json:"total_price" validate:"required,gte=0"`
}

// OrderHandler handles HTTP requests for the order ledger
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

// List handles listing all orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// Create handles order creation: input errors are rejected here, a
// refused reservation maps to 400, an unreachable inventory service to
// 503, and only a successful reservation yields a persisted order.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	order, err := h.orderService.Create(r.Context(), productID, *req.Quantity, *req.TotalPrice)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientStock) {
			middleware.RespondWithError(w, http.StatusBadRequest, "insufficient stock")
			return
		}
		if errors.Is(err, service.ErrInventoryUnavailable) {
			middleware.RespondWithError(w, http.StatusServiceUnavailable, "inventory service unavailable")
			return
		}
		h.logger.Error("Order creation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	h.logger.Info("Order created", zap.String("order_id", order.ID.String()))
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}
