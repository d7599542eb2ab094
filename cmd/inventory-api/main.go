package main

import (
	"fmt"

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
	cfg := config.Load("inventory")

	// Initialize logger
	log, err := logger.New(cfg.Server.Env, "inventory-api")
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting inventory service",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
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
	if err := database.RunMigrations(db, "migrations/inventory", log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Wire up the service
	inventoryRepo := repository.NewInventoryRepository(db)
	inventoryService := service.NewInventoryService(inventoryRepo)
	inventoryHandler := transport.NewInventoryHandler(inventoryService, log)

	srv := server.NewServer(cfg, log, dbService, func(r chi.Router) {
		inventoryHandler.RegisterRoutes(r)
	})

	srv.Run()
}
