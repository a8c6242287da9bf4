package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Decimal money arithmetic
)

// OrderStatusPending is the only status this implementation ever assigns;
// orders are immutable once created.
const OrderStatusPending = "pending"

// Order Model
type Order struct {
	ID        uint            `json:"id"`        // Primary key, assigned by the store
	Reference string          `json:"reference"` // External-facing order number (UUID)
	UserID    uint            `json:"userId"`    // Owning user
	Username  string          `json:"username"`  // Owner's name at checkout time
	Items     []CartItem      `json:"items"`     // Deep copy of the cart at checkout
	Total     decimal.Decimal `json:"total"`     // Sum of price*quantity, two decimals
	Status    string          `json:"status"`    // Always "pending"
	CreatedAt time.Time       `json:"createdAt"` // Checkout time
}
