package transport

import (
	"errors"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInventoryRequest represents the inventory creation payload.
// Quantity defaults to zero when absent.
type CreateInventoryRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  *int   `json:"quantity"`
}

// UpdateInventoryRequest sets an absolute quantity; when the field is
// absent the record is returned unchanged.
type UpdateInventoryRequest struct {
	Quantity *int `json:"quantity"`
}

// ReserveRequest represents the atomic check-and-decrement payload.
type ReserveRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  *int   `json:"quantity" validate:"required,gt=0"`
}

// InventoryHandler handles HTTP requests for the inventory store
type InventoryHandler struct {
	inventoryService service.InventoryService
	logger           *zap.Logger
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/reserve", h.Reserve)
		r.Put("/{product_id}", h.Update)
	})
}

// List handles listing all inventory records
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventoryService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list inventory", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list inventory")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, records)
}

// Create handles inventory record creation. Creation is idempotent per
// product: an existing record is returned with 200 instead of an error,
// a fresh one with 201.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInventoryRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Inventory validation failed", zap.Error(err))

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

	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	record, created, err := h.inventoryService.Ensure(r.Context(), productID, quantity)
	if err != nil {
		h.logger.Error("Inventory creation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create inventory record")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		h.logger.Info("Inventory record created", zap.String("product_id", productID.String()))
	}

	middleware.RespondWithJSON(w, status, record)
}

// Update handles absolute quantity updates for a product's record
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req UpdateInventoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Inventory update validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var record interface{}
	if req.Quantity == nil {
		current, err := h.inventoryService.Get(r.Context(), productID)
		if err != nil {
			if errors.Is(err, repository.ErrInventoryNotFound) {
				middleware.RespondWithError(w, http.StatusNotFound, "inventory record not found")
				return
			}
			h.logger.Error("Inventory lookup failed", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load inventory record")
			return
		}
		record = current
	} else {
		updated, err := h.inventoryService.SetQuantity(r.Context(), productID, *req.Quantity)
		if err != nil {
			if errors.Is(err, repository.ErrInventoryNotFound) {
				middleware.RespondWithError(w, http.StatusNotFound, "inventory record not found")
				return
			}
			h.logger.Error("Inventory update failed", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update inventory record")
			return
		}
		h.logger.Info("Inventory quantity updated",
			zap.String("product_id", productID.String()),
			zap.Int("quantity", *req.Quantity),
		)
		record = updated
	}

	middleware.RespondWithJSON(w, http.StatusOK, record)
}

// Reserve handles the atomic check-and-decrement gating order creation
func (h *InventoryHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req ReserveRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Reserve validation failed", zap.Error(err))

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

	record, err := h.inventoryService.Reserve(r.Context(), productID, *req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			h.logger.Warn("Reservation refused",
				zap.String("product_id", productID.String()),
				zap.Int("quantity", *req.Quantity),
			)
			middleware.RespondWithError(w, http.StatusBadRequest, "insufficient stock")
			return
		}
		h.logger.Error("Reservation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to reserve inventory")
		return
	}

	h.logger.Info("Stock reserved",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", *req.Quantity),
		zap.Int("remaining", record.Quantity),
	)
	middleware.RespondWithJSON(w, http.StatusOK, record)
}
