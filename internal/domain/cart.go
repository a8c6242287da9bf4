package domain

import "github.com/shopspring/decimal" // Decimal money arithmetic

// CartItem is a product snapshot held in a user's cart. Name and Price are
// captured at add time and do not track later catalog changes.
type CartItem struct {
	ProductID uint            `json:"productId"` // Product the line refers to
	Name      string          `json:"name"`      // Product name at add time
	Price     decimal.Decimal `json:"price"`     // Unit price at add time
	Quantity  int             `json:"quantity"`  // Units in the cart
}

// CartTotal sums price multiplied by quantity over all items, rounded to two
// decimal places.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero // Running total
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))) // price * quantity
	}
	return total.Round(2) // Round to cents
}
