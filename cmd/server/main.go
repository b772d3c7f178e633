package main

import (
	"log"
	"time"

	"restaurant_storefront/internal/config"
	"restaurant_storefront/internal/database"
	"restaurant_storefront/internal/handlers"
	"restaurant_storefront/internal/redis"
	"restaurant_storefront/internal/repository"
	"restaurant_storefront/internal/services"
	"restaurant_storefront/pkg/razorpay"
	"restaurant_storefront/pkg/restaurantapi"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.CartTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize backend API client; a stored credential takes
	// precedence over the configured token
	token := cfg.BackendAPIToken
	if stored, err := redisClient.GetToken(); err == nil && stored != "" {
		token = stored
	}
	backendClient := restaurantapi.NewClient(cfg.BackendAPIURL, token)

	// Initialize payment gateway
	gateway := razorpay.New(cfg.RazorpayKeyID)

	// Initialize repositories
	attemptRepo := repository.NewAttemptRepository(db)
	reconciliationRepo := repository.NewReconciliationRepository(db)

	// Initialize services
	menuService := services.NewMenuService(backendClient)
	checkoutService := services.NewCheckoutService(backendClient, gateway, redisClient, attemptRepo, reconciliationRepo, cfg.Currency)

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(menuService)
	cartHandler := handlers.NewCartHandler(redisClient, menuService, checkoutService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, gateway, reconciliationRepo)
	authHandler := handlers.NewAuthHandler(redisClient)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/menu", menuHandler.GetMenu)
		api.GET("/menu/:item_id", menuHandler.GetItem)

		api.GET("/cart/:cart_id", cartHandler.GetCart)
		api.POST("/cart/:cart_id/items", cartHandler.AddItem)
		api.PUT("/cart/:cart_id/items/:item_id", cartHandler.UpdateQuantity)
		api.DELETE("/cart/:cart_id/items/:item_id", cartHandler.RemoveItem)
		api.DELETE("/cart/:cart_id", cartHandler.ClearCart)

		api.POST("/cart/:cart_id/checkout", checkoutHandler.Checkout)
		api.GET("/cart/:cart_id/checkout/status", checkoutHandler.GetStatus)
		api.GET("/cart/:cart_id/checkout/payment", checkoutHandler.GetPendingPayment)
		api.POST("/payments/callback", checkoutHandler.PaymentCallback)
		api.GET("/payments/reconciliations", checkoutHandler.GetReconciliations)

		api.POST("/auth/session", authHandler.CreateSession)
		api.GET("/auth/session", authHandler.GetSession)
		api.DELETE("/auth/session", authHandler.DeleteSession)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
