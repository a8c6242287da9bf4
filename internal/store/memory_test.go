package store

import (
	"testing"

	"ecommerce_api/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.CreateUser("al", "a@x.com", "hash")
	require.NoError(t, err)
	require.Equal(t, uint(1), first.ID)

	_, err = s.CreateUser("other", "a@x.com", "hash2")
	require.ErrorIs(t, err, ErrEmailTaken)

	second, err := s.CreateUser("bee", "b@x.com", "hash3")
	require.NoError(t, err)
	require.Equal(t, uint(2), second.ID)
}

func TestGetUserByEmail(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetUserByEmail("nobody@x.com")
	require.ErrorIs(t, err, ErrUserNotFound)

	created, err := s.CreateUser("al", "a@x.com", "hash")
	require.NoError(t, err)

	found, err := s.GetUserByEmail("a@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, "hash", found.PasswordHash)
}

func TestCatalogLookups(t *testing.T) {
	s := NewMemoryStore()

	products := s.ListProducts()
	require.Len(t, products, 10)
	require.Equal(t, uint(1), products[0].ID)

	p, err := s.GetProduct(2)
	require.NoError(t, err)
	require.Equal(t, "Wireless Mouse", p.Name)

	_, err = s.GetProduct(999)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearchProductsIsCaseInsensitive(t *testing.T) {
	s := NewMemoryStore()

	byName := s.SearchProducts("LAPTOP")
	require.Len(t, byName, 1)
	require.Equal(t, "Laptop Pro 15", byName[0].Name)

	byCategory := s.SearchProducts("sportswear")
	require.Len(t, byCategory, 2)

	none := s.SearchProducts("no such thing")
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestAddCartItemMergesAndSnapshots(t *testing.T) {
	s := NewMemoryStore()
	user, err := s.CreateUser("al", "a@x.com", "hash")
	require.NoError(t, err)

	items, err := s.AddCartItem(user.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Wireless Mouse", items[0].Name)
	require.Equal(t, 2, items[0].Quantity)

	// Adding the same product again merges into one line.
	items, err = s.AddCartItem(user.ID, 2, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)

	// A different product appends a second line.
	items, err = s.AddCartItem(user.ID, 7, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestAddCartItemValidation(t *testing.T) {
	s := NewMemoryStore()
	user, err := s.CreateUser("al", "a@x.com", "hash")
	require.NoError(t, err)

	_, err = s.AddCartItem(user.ID, 999, 1)
	require.ErrorIs(t, err, ErrProductNotFound)

	// Product 8 has 8 units in stock.
	_, err = s.AddCartItem(user.ID, 8, 9)
	require.ErrorIs(t, err, ErrInsufficientStock)

	items, err := s.AddCartItem(user.ID, 8, 8)
	require.NoError(t, err)
	require.Equal(t, 8, items[0].Quantity)
}

func TestUpdateCartItem(t *testing.T) {
	s := NewMemoryStore()
	user, err := s.CreateUser("al", "a@x.com", "hash")
	require.NoError(t, err)

	_, err = s.UpdateCartItem(user.ID, 2, 1)
	require.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.AddCartItem(user.ID, 2, 2)
	require.NoError(t, err)

	items, err := s.UpdateCartItem(user.ID, 2, 7)
	require.NoError(t, err)
	require.Equal(t, 7, items[0].Quantity)

	// Zero quantity removes the line.
	items, err = s.UpdateCartItem(user.ID, 2, 0)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestRemoveAndClearCart(t *testing.T) {
	s := NewMemoryStore()
	user, err := s.CreateUser("al", "a@x.com", "hash")
	require.NoError(t, err)

	_, err = s.RemoveCartItem(user.ID, 2)
	require.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.AddCartItem(user.ID, 2, 1)
	require.NoError(t, err)
	_, err = s.AddCartItem(user.ID, 7, 1)
	require.NoError(t, err)

	items, err := s.RemoveCartItem(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, uint(7), items[0].ProductID)

	require.NoError(t, s.ClearCart(user.ID))
	items, err = s.GetCart(user.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCartTotalInvariant(t *testing.T) {
	s := NewMemoryStore()
	user, err := s.CreateUser("al", "a@x.com", "hash")
	require.NoError(t, err)

	// 2 x 24.50 + 3 x 29.99 = 138.97
	_, err = s.AddCartItem(user.ID, 2, 2)
	require.NoError(t, err)
	items, err := s.AddCartItem(user.ID, 7, 3)
	require.NoError(t, err)
	require.Equal(t, "138.97", domain.CartTotal(items).StringFixed(2))

	// 1 x 24.50 + 3 x 29.99 = 114.47
	items, err = s.UpdateCartItem(user.ID, 2, 1)
	require.NoError(t, err)
	require.Equal(t, "114.47", domain.CartTotal(items).StringFixed(2))

	items, err = s.RemoveCartItem(user.ID, 7)
	require.NoError(t, err)
	require.Equal(t, "24.50", domain.CartTotal(items).StringFixed(2))
}

func TestCreateOrderSnapshotsCartAndDecrementsStock(t *testing.T) {
	s := NewMemoryStore()
	user, err := s.CreateUser("al", "a@x.com", "hash")
	require.NoError(t, err)

	_, err = s.CreateOrder(user.ID)
	require.ErrorIs(t, err, ErrEmptyCart)

	_, err = s.AddCartItem(user.ID, 2, 2)
	require.NoError(t, err)
	_, err = s.AddCartItem(user.ID, 7, 1)
	require.NoError(t, err)

	order, err := s.CreateOrder(user.ID)
	require.NoError(t, err)
	require.Equal(t, uint(1), order.ID)
	require.NotEmpty(t, order.Reference)
	require.Equal(t, user.ID, order.UserID)
	require.Equal(t, "al", order.Username)
	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	require.Equal(t, "78.99", order.Total.StringFixed(2)) // 2*24.50 + 29.99

	// Cart emptied.
	items, err := s.GetCart(user.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	// Stock decremented per ordered quantity.
	mouse, err := s.GetProduct(2)
	require.NoError(t, err)
	require.Equal(t, 48, mouse.Stock)
	mat, err := s.GetProduct(7)
	require.NoError(t, err)
	require.Equal(t, 59, mat.Stock)
}

func TestOrderItemsAreDeepCopies(t *testing.T) {
	s := NewMemoryStore()
	user, err := s.CreateUser("al", "a@x.com", "hash")
	require.NoError(t, err)

	_, err = s.AddCartItem(user.ID, 2, 2)
	require.NoError(t, err)

	order, err := s.CreateOrder(user.ID)
	require.NoError(t, err)

	// Mutating the returned snapshot must not leak into the stored order.
	order.Items[0].Quantity = 100
	stored, err := s.GetOrder(user.ID, order.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.Items[0].Quantity)
}

func TestOrderOwnershipIsolation(t *testing.T) {
	s := NewMemoryStore()
	alice, err := s.CreateUser("alice", "alice@x.com", "hash")
	require.NoError(t, err)
	bob, err := s.CreateUser("bob", "bob@x.com", "hash")
	require.NoError(t, err)

	_, err = s.AddCartItem(alice.ID, 2, 1)
	require.NoError(t, err)
	order, err := s.CreateOrder(alice.ID)
	require.NoError(t, err)

	// Bob cannot fetch or list Alice's order.
	_, err = s.GetOrder(bob.ID, order.ID)
	require.ErrorIs(t, err, ErrOrderNotFound)

	orders, err := s.ListOrders(bob.ID)
	require.NoError(t, err)
	require.Empty(t, orders)

	orders, err = s.ListOrders(alice.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
}
