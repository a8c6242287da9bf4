package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"ecommerce_api/internal/domain" // Domain models
	"ecommerce_api/internal/store"  // Store interface and errors

	"github.com/gin-gonic/gin" // Gin web framework
)

// AddToCartRequest is the add-to-cart payload
type AddToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`      // Product must be provided
	Quantity  int  `json:"quantity" binding:"required,gt=0"`  // Quantity must be positive
}

// UpdateCartRequest is the quantity-change payload. Quantity is a pointer so
// an explicit zero (remove the line) survives binding.
type UpdateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"` // New quantity, zero removes
}

// cartResponse renders the current cart with its computed total
func cartResponse(c *gin.Context, items []domain.CartItem) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,                                 // Envelope flag
		"items":   items,                                // Current cart lines
		"total":   domain.CartTotal(items).StringFixed(2), // Two-decimal total
	})
}

// GetCartHandler returns the authenticated user's cart and total
func GetCartHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Fetch the cart from the store
		items, err := s.GetCart(userID.(uint))
		if err != nil {
			// Token user no longer exists
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		cartResponse(c, items) // Return items and total
	}
}

// AddToCartHandler merges a product into the cart or appends a snapshot line
func AddToCartHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		var req AddToCartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			fail(c, http.StatusBadRequest, "Product id and a positive quantity are required")
			return
		}
		// Add the item through the store
		items, err := s.AddCartItem(userID.(uint), req.ProductID, req.Quantity)
		if err != nil {
			// Map store errors onto the HTTP taxonomy
			switch {
			case errors.Is(err, store.ErrProductNotFound):
				fail(c, http.StatusNotFound, "Product not found")
			case errors.Is(err, store.ErrInsufficientStock):
				fail(c, http.StatusBadRequest, "Requested quantity exceeds available stock")
			default:
				fail(c, http.StatusUnauthorized, "Unauthorized")
			}
			return
		}
		cartResponse(c, items) // Return the updated cart
	}
}

// UpdateCartItemHandler replaces a line's quantity; zero removes the line
func UpdateCartItemHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Parse the productId path parameter
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
		if err != nil {
			fail(c, http.StatusNotFound, "Item not found in cart")
			return
		}
		var req UpdateCartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			fail(c, http.StatusBadRequest, "Quantity is required")
			return
		}
		// Update the line through the store; no stock re-check here
		items, err := s.UpdateCartItem(userID.(uint), uint(productID), *req.Quantity)
		if err != nil {
			// Line absent from the cart
			fail(c, http.StatusNotFound, "Item not found in cart")
			return
		}
		cartResponse(c, items) // Return the updated cart
	}
}

// RemoveCartItemHandler deletes a single line from the cart
func RemoveCartItemHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Parse the productId path parameter
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
		if err != nil {
			fail(c, http.StatusNotFound, "Item not found in cart")
			return
		}
		// Remove the line through the store
		items, err := s.RemoveCartItem(userID.(uint), uint(productID))
		if err != nil {
			// Line absent from the cart
			fail(c, http.StatusNotFound, "Item not found in cart")
			return
		}
		cartResponse(c, items) // Return the updated cart
	}
}

// ClearCartHandler removes every line from the cart
func ClearCartHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Clear the cart through the store
		if err := s.ClearCart(userID.(uint)); err != nil {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Return the now-empty cart
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
	}
}
