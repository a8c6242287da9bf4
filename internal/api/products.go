package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"ecommerce_api/internal/store" // Store interface and errors

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListProductsHandler returns the full product catalog
func ListProductsHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := s.ListProducts() // Fetch the catalog
		// Return the list with its count
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(products), "products": products})
	}
}

// GetProductHandler returns a single product by ID
func GetProductHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the ID path parameter; non-numeric IDs fall through to not found
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			fail(c, http.StatusNotFound, "Product not found")
			return
		}
		// Fetch the product from the store
		product, err := s.GetProduct(uint(id))
		if err != nil {
			// Unknown ID
			fail(c, http.StatusNotFound, "Product not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product}) // Return the product
	}
}

// SearchProductsHandler matches the query against name, category and
// description. It is mounted on the /:id/:query route because gin's tree
// cannot register a static "search" segment next to the :id parameter, so
// the handler enforces the "search" prefix itself.
func SearchProductsHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only /api/products/search/:query is a valid two-segment path
		if c.Param("id") != "search" {
			fail(c, http.StatusNotFound, "Product not found")
			return
		}
		matches := s.SearchProducts(c.Param("query")) // Run the search
		// An empty result is a normal response, not an error
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(matches), "products": matches})
	}
}
