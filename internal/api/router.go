package api

import (
	"net/http" // HTTP status codes
	"time"     // CORS preflight cache duration

	"ecommerce_api/internal/config"     // Application configuration
	"ecommerce_api/internal/middleware" // Auth middleware
	"ecommerce_api/internal/store"      // Store interface

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// NewRouter assembles the gin engine with middleware and every route
func NewRouter(cfg *config.Config, s store.Store) *gin.Engine {
	r := gin.New()                          // Bare engine, middleware added explicitly
	r.Use(gin.Logger())                     // Request logging
	r.Use(gin.CustomRecovery(RecoveryHandler)) // Map panics to a 500 envelope

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},                                              // Any origin
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},        // Allowed methods
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"}, // Allowed headers
		ExposeHeaders: []string{"Content-Length"},                                 // Exposed headers
		MaxAge:        12 * time.Hour,                                             // Preflight cache
	}))

	r.GET("/", IndexHandler()) // Endpoint map

	// Auth routes (public)
	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", RegisterHandler(s))           // Registration endpoint
	authGroup.POST("/login", LoginHandler(s, cfg.JWTSecret))  // Login endpoint

	// Product routes (public)
	productGroup := r.Group("/api/products")
	productGroup.GET("", ListProductsHandler(s))            // Full catalog
	productGroup.GET("/:id", GetProductHandler(s))          // Single product
	productGroup.GET("/:id/:query", SearchProductsHandler(s)) // Serves /api/products/search/:query

	// Cart routes (protected by JWT)
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret)) // Protect cart routes
	cartGroup.GET("", GetCartHandler(s))                       // Get cart endpoint
	cartGroup.POST("", AddToCartHandler(s))                    // Add to cart endpoint
	cartGroup.PUT("/:productId", UpdateCartItemHandler(s))     // Change quantity endpoint
	cartGroup.DELETE("/:productId", RemoveCartItemHandler(s))  // Remove line endpoint
	cartGroup.DELETE("", ClearCartHandler(s))                  // Clear cart endpoint

	// Order routes (protected by JWT)
	orderGroup := r.Group("/api/orders")
	orderGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret)) // Protect order routes
	orderGroup.POST("", CreateOrderHandler(s))                  // Checkout endpoint
	orderGroup.GET("", ListOrdersHandler(s))                    // List orders endpoint
	orderGroup.GET("/:id", GetOrderHandler(s))                  // Single order endpoint

	return r // Fully assembled engine
}

// IndexHandler lists the available endpoints
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,            // Envelope flag
			"message": "E-commerce API", // Service name
			"endpoints": gin.H{
				"auth": gin.H{
					"register": "POST /api/auth/register", // Create an account
					"login":    "POST /api/auth/login",    // Obtain a bearer token
				},
				"products": gin.H{
					"list":   "GET /api/products",               // Full catalog
					"get":    "GET /api/products/:id",           // Single product
					"search": "GET /api/products/search/:query", // Substring search
				},
				"cart": gin.H{
					"get":    "GET /api/cart",               // Items and total
					"add":    "POST /api/cart",              // Add a product
					"update": "PUT /api/cart/:productId",    // Change quantity
					"remove": "DELETE /api/cart/:productId", // Remove a line
					"clear":  "DELETE /api/cart",            // Empty the cart
				},
				"orders": gin.H{
					"create": "POST /api/orders",    // Checkout
					"list":   "GET /api/orders",     // Own orders
					"get":    "GET /api/orders/:id", // Single order
				},
			},
		})
	}
}
