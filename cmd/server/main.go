package main

import (
	"log" // log package is needed for logging

	"ecommerce_api/internal/api"    // Custom package for API handlers
	"ecommerce_api/internal/config" // Custom package for configuration
	"ecommerce_api/internal/store"  // Custom package for the in-memory store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// All state is process-local memory; nothing survives a restart and
	// multiple processes cannot share it
	memStore := store.NewMemoryStore() // In-memory store seeded with the catalog

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin with middleware and routes
	r := api.NewRouter(cfg, memStore)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	// Start the server on port cfg.AppPort
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
