package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGetCartStartsEmpty(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "al", "a@x.com")

	w, resp := doRequest(t, r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["items"])
	require.Equal(t, "0.00", resp["total"])
}

func TestAddToCartMergesLines(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "al", "a@x.com")

	// First add creates a snapshot line.
	w, resp := doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{"productId": 2, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	items := resp["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	require.Equal(t, float64(2), line["quantity"])
	require.Equal(t, "Wireless Mouse", line["name"])
	require.Equal(t, "49.00", resp["total"])

	// Repeating the same add merges into one line with the summed quantity.
	w, resp = doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{"productId": 2, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	items = resp["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, float64(4), items[0].(map[string]any)["quantity"])
	require.Equal(t, "98.00", resp["total"])
}

func TestAddToCartValidation(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "al", "a@x.com")

	// Missing fields.
	w, _ := doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Non-positive quantity.
	w, _ = doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{"productId": 2, "quantity": -1})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown product.
	w, resp := doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{"productId": 999, "quantity": 1})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Product not found", resp["message"])

	// Quantity above stock (product 8 has 8 units).
	w, resp = doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{"productId": 8, "quantity": 9})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Requested quantity exceeds available stock", resp["message"])
}

func TestUpdateCartItem(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "al", "a@x.com")

	// Updating an absent line fails.
	w, _ := doRequest(t, r, http.MethodPut, "/api/cart/2", token, gin.H{"quantity": 1})
	require.Equal(t, http.StatusNotFound, w.Code)

	_, _ = doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{"productId": 2, "quantity": 2})

	// Replace the quantity.
	w, resp := doRequest(t, r, http.MethodPut, "/api/cart/2", token, gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)
	items := resp["items"].([]any)
	require.Equal(t, float64(5), items[0].(map[string]any)["quantity"])
	require.Equal(t, "122.50", resp["total"])

	// Quantity zero removes the line.
	w, resp = doRequest(t, r, http.MethodPut, "/api/cart/2", token, gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["items"])
	require.Equal(t, "0.00", resp["total"])

	// Missing quantity is a validation error.
	_, _ = doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{"productId": 2, "quantity": 1})
	w, _ = doRequest(t, r, http.MethodPut, "/api/cart/2", token, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveAndClearCart(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "al", "a@x.com")

	// Removing an absent line fails.
	w, resp := doRequest(t, r, http.MethodDelete, "/api/cart/2", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Item not found in cart", resp["message"])

	_, _ = doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{"productId": 2, "quantity": 1})
	_, _ = doRequest(t, r, http.MethodPost, "/api/cart", token, gin.H{"productId": 7, "quantity": 1})

	// Remove one line.
	w, resp = doRequest(t, r, http.MethodDelete, "/api/cart/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["items"], 1)

	// Clear the rest.
	w, _ = doRequest(t, r, http.MethodDelete, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doRequest(t, r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["items"])
}
