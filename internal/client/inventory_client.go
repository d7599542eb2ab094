package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain"

	"github.com/google/uuid"
)

// ErrInsufficientStock is returned when the inventory service answers a
// reserve call with anything other than success. The order service
// relays it verbatim to its own caller.
var ErrInsufficientStock = errors.New("insufficient stock")

// reservePayload is the request body for POST /api/inventory/reserve
type reservePayload struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// recordPayload is the request body for POST /api/inventory
type recordPayload struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// InventoryClient talks to the inventory service HTTP API. Reserve is a
// blocking call whose outcome gates order creation; EnsureRecord is a
// fire-and-forget notify whose outcome the caller ignores.
type InventoryClient struct {
	baseURL       string
	reserveClient *http.Client
	notifyClient  *http.Client
}

// NewInventoryClient creates a client for the inventory service.
func NewInventoryClient(cfg config.InventoryConfig) *InventoryClient {
	return &InventoryClient{
		baseURL: cfg.BaseURL,
		reserveClient: &http.Client{
			Timeout: time.Duration(cfg.ReserveTimeout) * time.Second,
		},
		notifyClient: &http.Client{
			Timeout: time.Duration(cfg.NotifyTimeout) * time.Second,
		},
	}
}

// Reserve asks the inventory service to atomically decrement stock for
// a product. A non-success status maps to ErrInsufficientStock; any
// transport failure (timeout, connection refused) is returned as-is so
// the caller can tell the two apart.
func (c *InventoryClient) Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error) {
	body, err := json.Marshal(reservePayload{ProductID: productID, Quantity: quantity})
	if err != nil {
		return nil, fmt.Errorf("failed to encode reserve request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/inventory/reserve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build reserve request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.reserveClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reserve call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInsufficientStock
	}

	record := &domain.InventoryRecord{}
	if err := json.NewDecoder(resp.Body).Decode(record); err != nil {
		return nil, fmt.Errorf("failed to decode reserve response: %w", err)
	}

	return record, nil
}

// EnsureRecord notifies the inventory service that a product exists so
// it can initialize a stock record. Callers treat failures as
// log-and-continue.
func (c *InventoryClient) EnsureRecord(ctx context.Context, productID uuid.UUID, quantity int) error {
	body, err := json.Marshal(recordPayload{ProductID: productID, Quantity: quantity})
	if err != nil {
		return fmt.Errorf("failed to encode inventory record request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/inventory", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build inventory record request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.notifyClient.Do(req)
	if err != nil {
		return fmt.Errorf("inventory notify failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("inventory notify returned status %d", resp.StatusCode)
	}

	return nil
}
