package main

import (
	"fmt"

	"storefront/internal/client"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/logger"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/service"
	"storefront/internal/transport"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load("product")

	// Initialize logger
	log, err := logger.New(cfg.Server.Env, "product-api")
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting product catalog service",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("inventory_url", cfg.Inventory.BaseURL),
	)

	// Initialize database
	dbService, err := database.New(cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	db := dbService.DB()

	// Check database health
	log.Info("Database health check", zap.Any("health", dbService.Health()))

	// Run migrations
	if err := database.RunMigrations(db, "migrations/product", log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Wire up the service
	productRepo := repository.NewProductRepository(db)
	inventoryClient := client.NewInventoryClient(cfg.Inventory)
	productService := service.NewProductService(productRepo, inventoryClient, log)
	productHandler := transport.NewProductHandler(productService, log)

	srv := server.NewServer(cfg, log, dbService, func(r chi.Router) {
		productHandler.RegisterRoutes(r)
	})

	srv.Run()
}
