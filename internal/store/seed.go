package store

import (
	"ecommerce_api/internal/domain"

	"github.com/shopspring/decimal"
)

// seedProducts returns the static catalog every fresh store starts with.
// Stock is never replenished once the server is running.
func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop Pro 15", Category: "electronics", Description: "15-inch laptop with 16GB RAM and 512GB SSD", Price: decimal.NewFromFloat(1299.99), Stock: 10},
		{ID: 2, Name: "Wireless Mouse", Category: "electronics", Description: "Ergonomic wireless mouse with USB receiver", Price: decimal.NewFromFloat(24.50), Stock: 50},
		{ID: 3, Name: "Mechanical Keyboard", Category: "electronics", Description: "Tenkeyless mechanical keyboard with brown switches", Price: decimal.NewFromFloat(89.90), Stock: 25},
		{ID: 4, Name: "Noise Cancelling Headphones", Category: "electronics", Description: "Over-ear headphones with active noise cancelling", Price: decimal.NewFromFloat(199.00), Stock: 15},
		{ID: 5, Name: "USB-C Hub", Category: "electronics", Description: "7-in-1 USB-C hub with HDMI and card reader", Price: decimal.NewFromFloat(39.99), Stock: 40},
		{ID: 6, Name: "Running Shoes", Category: "sportswear", Description: "Lightweight road running shoes", Price: decimal.NewFromFloat(119.95), Stock: 30},
		{ID: 7, Name: "Yoga Mat", Category: "sportswear", Description: "Non-slip yoga mat, 6mm thick", Price: decimal.NewFromFloat(29.99), Stock: 60},
		{ID: 8, Name: "Espresso Machine", Category: "home", Description: "Semi-automatic espresso machine with steam wand", Price: decimal.NewFromFloat(249.00), Stock: 8},
		{ID: 9, Name: "Ceramic Mug Set", Category: "home", Description: "Set of four 350ml ceramic mugs", Price: decimal.NewFromFloat(22.00), Stock: 45},
		{ID: 10, Name: "Desk Lamp", Category: "home", Description: "LED desk lamp with adjustable brightness", Price: decimal.NewFromFloat(34.75), Stock: 35},
	}
}
