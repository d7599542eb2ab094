package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInventoryNotFound = errors.New("inventory record not found")
	ErrInventoryExists   = errors.New("inventory record already exists for product")
	// ErrInsufficientStock covers both a missing record and a quantity
	// lower than the requested reservation.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InventoryRepository defines the interface for inventory data access
type InventoryRepository interface {
	Create(ctx context.Context, record *domain.InventoryRecord) error
	List(ctx context.Context) ([]*domain.InventoryRecord, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) (*domain.InventoryRecord, error)
	SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error)
	Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error)
}

type inventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new instance of InventoryRepository
func NewInventoryRepository(db *sql.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// Create inserts a new inventory record. The unique constraint on
// product_id surfaces as ErrInventoryExists so callers can fall back to
// the existing record.
func (r *inventoryRepository) Create(ctx context.Context, record *domain.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.ProductID,
		record.Quantity,
		record.CreatedAt,
		record.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrInventoryExists
		}
		return fmt.Errorf("failed to create inventory record: %w", err)
	}

	return nil
}

// List retrieves all inventory records
func (r *inventoryRepository) List(ctx context.Context) ([]*domain.InventoryRecord, error) {
	query := `
		SELECT id, product_id, quantity, created_at, updated_at
		FROM inventory
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	records := []*domain.InventoryRecord{}
	for rows.Next() {
		record := &domain.InventoryRecord{}
		err := rows.Scan(
			&record.ID,
			&record.ProductID,
			&record.Quantity,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory: %w", err)
	}

	return records, nil
}

// FindByProductID retrieves the inventory record for a product
func (r *inventoryRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*domain.InventoryRecord, error) {
	query := `
		SELECT id, product_id, quantity, created_at, updated_at
		FROM inventory
		WHERE product_id = $1
	`

	record := &domain.InventoryRecord{}
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&record.ID,
		&record.ProductID,
		&record.Quantity,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to find inventory by product ID: %w", err)
	}

	return record, nil
}

// SetQuantity overwrites the quantity unconditionally. Only the reserve
// path enforces a lower bound.
func (r *inventoryRepository) SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error) {
	query := `
		UPDATE inventory
		SET quantity = $2, updated_at = NOW()
		WHERE product_id = $1
		RETURNING id, product_id, quantity, created_at, updated_at
	`

	record := &domain.InventoryRecord{}
	err := r.db.QueryRowContext(ctx, query, productID, quantity).Scan(
		&record.ID,
		&record.ProductID,
		&record.Quantity,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to set inventory quantity: %w", err)
	}

	return record, nil
}

// Reserve atomically checks and decrements the quantity for a product.
// The conditional UPDATE is a single statement, so two concurrent
// reservations against the same product can never jointly take more
// stock than is available. Missing records and short stock both report
// ErrInsufficientStock, and neither mutates anything.
func (r *inventoryRepository) Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*domain.InventoryRecord, error) {
	query := `
		UPDATE inventory
		SET quantity = quantity - $2, updated_at = NOW()
		WHERE product_id = $1 AND quantity >= $2
		RETURNING id, product_id, quantity, created_at, updated_at
	`

	record := &domain.InventoryRecord{}
	err := r.db.QueryRowContext(ctx, query, productID, quantity).Scan(
		&record.ID,
		&record.ProductID,
		&record.Quantity,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to reserve inventory: %w", err)
	}

	return record, nil
}
