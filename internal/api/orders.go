package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"ecommerce_api/internal/store" // Store interface and errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateOrderHandler checks out the authenticated user's cart
func CreateOrderHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Create the order through the store
		order, err := s.CreateOrder(userID.(uint))
		if err != nil {
			// An empty cart is the only expected failure
			if errors.Is(err, store.ErrEmptyCart) {
				fail(c, http.StatusBadRequest, "Cart is empty")
				return
			}
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Log the order creation
		logrus.WithFields(logrus.Fields{
			"user_id":   order.UserID,            // Owning user
			"order_id":  order.ID,                // New order ID
			"reference": order.Reference,         // External order number
			"total":     order.Total.StringFixed(2), // Order total
		}).Info("Order created")
		// Return the created order
		c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
	}
}

// ListOrdersHandler returns the authenticated user's orders
func ListOrdersHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Fetch the user's orders
		orders, err := s.ListOrders(userID.(uint))
		if err != nil {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Return the list with its count
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
	}
}

// GetOrderHandler returns one of the authenticated user's orders. Orders
// owned by other users come back as not found.
func GetOrderHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// Parse the ID path parameter
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			fail(c, http.StatusNotFound, "Order not found")
			return
		}
		// Fetch the order scoped to this user
		order, err := s.GetOrder(userID.(uint), uint(orderID))
		if err != nil {
			// Unknown or foreign-owned order
			fail(c, http.StatusNotFound, "Order not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order}) // Return the order
	}
}
