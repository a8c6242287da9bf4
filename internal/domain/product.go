package domain

import "github.com/shopspring/decimal" // Decimal money arithmetic

// Product Model
type Product struct {
	ID          uint            `json:"id"`          // Primary key
	Name        string          `json:"name"`        // Product name
	Category    string          `json:"category"`    // Category label
	Description string          `json:"description"` // Free-text description
	Price       decimal.Decimal `json:"price"`       // Unit price
	Stock       int             `json:"stock"`       // Units available, decremented at checkout
}
