package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Each service runs its own migration directory against its own
// database.
var migrationDirs = map[string]string{
	"product":   "../../migrations/product",
	"inventory": "../../migrations/inventory",
	"orders":    "../../migrations/orders",
}

func TestMigrationFilesExist(t *testing.T) {
	expectedMigrations := map[string]string{
		"product":   "00001_create_products_table.sql",
		"inventory": "00001_create_inventory_table.sql",
		"orders":    "00001_create_orders_table.sql",
	}

	for service, migration := range expectedMigrations {
		path := filepath.Join(migrationDirs[service], migration)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Migration file %s does not exist", path)
		}
	}
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	for service, dir := range migrationDirs {
		files, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("Failed to read %s migrations directory: %v", service, err)
		}

		sqlFileCount := 0
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
				continue
			}

			sqlFileCount++
			content, err := os.ReadFile(filepath.Join(dir, file.Name()))
			if err != nil {
				t.Errorf("Failed to read migration file %s: %v", file.Name(), err)
				continue
			}

			contentStr := string(content)

			for _, directive := range []string{
				"-- +goose Up",
				"-- +goose Down",
				"-- +goose StatementBegin",
				"-- +goose StatementEnd",
			} {
				if !strings.Contains(contentStr, directive) {
					t.Errorf("Migration file %s/%s missing '%s' directive", service, file.Name(), directive)
				}
			}
		}

		if sqlFileCount == 0 {
			t.Errorf("No SQL migration files found for %s", service)
		}
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	expectedTables := map[string]struct {
		service   string
		migration string
	}{
		"products":  {"product", "00001_create_products_table.sql"},
		"inventory": {"inventory", "00001_create_inventory_table.sql"},
		"orders":    {"orders", "00001_create_orders_table.sql"},
	}

	for tableName, loc := range expectedTables {
		path := filepath.Join(migrationDirs[loc.service], loc.migration)
		content, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("Failed to read migration file %s: %v", path, err)
			continue
		}

		contentStr := string(content)

		createTableStmt := "CREATE TABLE IF NOT EXISTS " + tableName
		if !strings.Contains(contentStr, createTableStmt) {
			t.Errorf("Migration file %s does not create table %s", path, tableName)
		}

		dropTableStmt := "DROP TABLE IF EXISTS " + tableName
		if !strings.Contains(contentStr, dropTableStmt) {
			t.Errorf("Migration file %s does not drop table %s in down section", path, tableName)
		}
	}
}

func TestInventoryTableHasRequiredColumns(t *testing.T) {
	path := filepath.Join(migrationDirs["inventory"], "00001_create_inventory_table.sql")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read inventory migration: %v", err)
	}

	contentStr := string(content)
	requiredColumns := []string{
		"id UUID PRIMARY KEY",
		"product_id UUID UNIQUE",
		"quantity INTEGER",
		"created_at TIMESTAMP",
		"updated_at TIMESTAMP",
	}

	for _, column := range requiredColumns {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Inventory table missing required column definition: %s", column)
		}
	}

	// Absolute quantity updates have no lower bound, so the column must
	// not carry a non-negative CHECK constraint.
	if strings.Contains(contentStr, "CHECK") {
		t.Error("Inventory quantity must not be constrained by a CHECK clause")
	}
}

func TestProductsTableHasRequiredColumns(t *testing.T) {
	path := filepath.Join(migrationDirs["product"], "00001_create_products_table.sql")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read products migration: %v", err)
	}

	contentStr := string(content)
	requiredColumns := []string{
		"id UUID PRIMARY KEY",
		"name VARCHAR",
		"description VARCHAR",
		"price DOUBLE PRECISION",
		"created_at TIMESTAMP",
		"updated_at TIMESTAMP",
	}

	for _, column := range requiredColumns {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Products table missing required column definition: %s", column)
		}
	}
}

func TestOrdersTableHasRequiredColumns(t *testing.T) {
	path := filepath.Join(migrationDirs["orders"], "00001_create_orders_table.sql")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read orders migration: %v", err)
	}

	contentStr := string(content)
	requiredColumns := []string{
		"id UUID PRIMARY KEY",
		"product_id UUID",
		"quantity INTEGER",
		"total_price DOUBLE PRECISION",
		"created_at TIMESTAMP",
	}

	for _, column := range requiredColumns {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Orders table missing required column definition: %s", column)
		}
	}

	// Orders are immutable; there is nothing to update.
	if strings.Contains(contentStr, "updated_at") {
		t.Error("Orders table must not carry an updated_at column")
	}
}
