package main

import (
	"context"
	"log"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/controllers"
	"github.com/rahulnm/zestmart/routes"
	"github.com/rahulnm/zestmart/utils"
	"github.com/rahulnm/zestmart/workers"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database and supporting services
	config.InitDB()
	config.InitRedis()
	config.InitGoogleOAuth()
	controllers.InitOTPStore()

	// Create the initial admin account on a fresh install
	if err := controllers.EnsureDefaultAdmin(); err != nil {
		utils.LogError("Failed to create default admin: %v", err)
		log.Fatal("Failed to create default admin:", err)
	}

	// Start the offer expiry sweeper
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workers.NewOfferExpiryWorker().Start(ctx)

	// Set up router with middleware and routes
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
