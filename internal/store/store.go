package store

import (
	"errors"

	"ecommerce_api/internal/domain"
)

// Sentinel errors returned by Store implementations. Handlers map these onto
// the HTTP error taxonomy.
var (
	ErrEmailTaken        = errors.New("email already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrItemNotFound      = errors.New("item not found in cart")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
)

// Store defines the operations handlers need over users, products, carts and
// orders. MemoryStore implements this interface; a persistent implementation
// could be substituted without touching handler logic.
type Store interface {
	// CreateUser registers a new user. Returns ErrEmailTaken if the email is
	// already registered. Email is expected lowercase.
	CreateUser(username, email, passwordHash string) (domain.User, error)

	// GetUserByEmail retrieves a user by lowercase email.
	// Returns ErrUserNotFound if missing.
	GetUserByEmail(email string) (domain.User, error)

	// GetUserByID retrieves a user by ID. Returns ErrUserNotFound if missing.
	GetUserByID(id uint) (domain.User, error)

	// ListProducts returns the full catalog ordered by ID.
	ListProducts() []domain.Product

	// GetProduct retrieves a product by ID. Returns ErrProductNotFound if missing.
	GetProduct(id uint) (domain.Product, error)

	// SearchProducts returns products whose name, category or description
	// contains the query, case-insensitively. An empty result is not an error.
	SearchProducts(query string) []domain.Product

	// GetCart returns a copy of the user's cart items.
	GetCart(userID uint) ([]domain.CartItem, error)

	// AddCartItem merges quantity into an existing line or appends a new
	// product snapshot line. Returns ErrProductNotFound for an unknown product
	// and ErrInsufficientStock when quantity exceeds the current stock.
	AddCartItem(userID, productID uint, quantity int) ([]domain.CartItem, error)

	// UpdateCartItem replaces a line's quantity; zero removes the line.
	// Returns ErrItemNotFound if the product is not in the cart.
	UpdateCartItem(userID, productID uint, quantity int) ([]domain.CartItem, error)

	// RemoveCartItem deletes a line. Returns ErrItemNotFound if absent.
	RemoveCartItem(userID, productID uint) ([]domain.CartItem, error)

	// ClearCart removes every line from the user's cart.
	ClearCart(userID uint) error

	// CreateOrder snapshots the cart into a new pending order, decrements
	// product stock, and clears the cart. Returns ErrEmptyCart if the cart
	// has no items.
	CreateOrder(userID uint) (domain.Order, error)

	// ListOrders returns the user's orders ordered by ID.
	ListOrders(userID uint) ([]domain.Order, error)

	// GetOrder retrieves one of the user's orders. Returns ErrOrderNotFound
	// if the ID is unknown or the order belongs to another user.
	GetOrder(userID, orderID uint) (domain.Order, error)
}
