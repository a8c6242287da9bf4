package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"ecommerce_api/internal/domain"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory implementation of Store backed by maps.
// It is safe for concurrent use via an internal RWMutex. All state is
// process-local; nothing survives a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[uint]*domain.User
	emails      map[string]uint // lowercase email -> user ID
	products    map[uint]*domain.Product
	orders      map[uint]*domain.Order
	nextUserID  uint
	nextOrderID uint
}

// NewMemoryStore creates an in-memory store preloaded with the seed catalog.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:       make(map[uint]*domain.User),
		emails:      make(map[string]uint),
		products:    make(map[uint]*domain.Product),
		orders:      make(map[uint]*domain.Order),
		nextUserID:  1,
		nextOrderID: 1,
	}
	for _, p := range seedProducts() {
		product := p
		s.products[product.ID] = &product
	}
	return s
}

// CreateUser registers a new user with an empty cart.
func (s *MemoryStore) CreateUser(username, email, passwordHash string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[email]; exists {
		return domain.User{}, ErrEmailTaken
	}

	user := &domain.User{
		ID:           s.nextUserID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Cart:         []domain.CartItem{},
		CreatedAt:    time.Now(),
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.emails[email] = user.ID

	return copyUser(user), nil
}

// GetUserByEmail retrieves a user by lowercase email.
func (s *MemoryStore) GetUserByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.emails[email]
	if !exists {
		return domain.User{}, ErrUserNotFound
	}
	return copyUser(s.users[id]), nil
}

// GetUserByID retrieves a user by ID.
func (s *MemoryStore) GetUserByID(id uint) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return domain.User{}, ErrUserNotFound
	}
	return copyUser(user), nil
}

// ListProducts returns the full catalog ordered by ID.
func (s *MemoryStore) ListProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

// GetProduct retrieves a product by ID.
func (s *MemoryStore) GetProduct(id uint) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return domain.Product{}, ErrProductNotFound
	}
	return *product, nil
}

// SearchProducts matches the query case-insensitively against name, category
// and description.
func (s *MemoryStore) SearchProducts(query string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	matches := make([]domain.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matches = append(matches, *p)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// GetCart returns a copy of the user's cart items.
func (s *MemoryStore) GetCart(userID uint) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}
	return copyItems(user.Cart), nil
}

// AddCartItem merges into an existing line or appends a product snapshot.
// The stock check covers the requested quantity only, not the merged line
// total; that mirrors the add-time-only validation of the rest of the system.
func (s *MemoryStore) AddCartItem(userID, productID uint, quantity int) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}
	product, exists := s.products[productID]
	if !exists {
		return nil, ErrProductNotFound
	}
	if quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	// Merge into an existing line if the product is already in the cart.
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart[i].Quantity += quantity
			return copyItems(user.Cart), nil
		}
	}

	// Otherwise snapshot the product into a new line.
	user.Cart = append(user.Cart, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	})
	return copyItems(user.Cart), nil
}

// UpdateCartItem replaces a line's quantity; zero removes the line. Stock is
// not re-checked here.
func (s *MemoryStore) UpdateCartItem(userID, productID uint, quantity int) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			if quantity == 0 {
				user.Cart = append(user.Cart[:i], user.Cart[i+1:]...)
			} else {
				user.Cart[i].Quantity = quantity
			}
			return copyItems(user.Cart), nil
		}
	}
	return nil, ErrItemNotFound
}

// RemoveCartItem deletes a line from the cart.
func (s *MemoryStore) RemoveCartItem(userID, productID uint) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart = append(user.Cart[:i], user.Cart[i+1:]...)
			return copyItems(user.Cart), nil
		}
	}
	return nil, ErrItemNotFound
}

// ClearCart removes every line from the user's cart.
func (s *MemoryStore) ClearCart(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return ErrUserNotFound
	}
	user.Cart = []domain.CartItem{}
	return nil
}

// CreateOrder snapshots the cart into a new pending order under a single
// lock, decrements product stock, and clears the cart. Stock was validated
// only at add time, so it can go negative when concurrent carts oversell the
// same product.
func (s *MemoryStore) CreateOrder(userID uint) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return domain.Order{}, ErrUserNotFound
	}
	if len(user.Cart) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	items := copyItems(user.Cart)
	order := &domain.Order{
		ID:        s.nextOrderID,
		Reference: uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Items:     items,
		Total:     domain.CartTotal(items),
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	s.nextOrderID++
	s.orders[order.ID] = order

	for _, item := range items {
		if product, ok := s.products[item.ProductID]; ok {
			product.Stock -= item.Quantity
		}
	}
	user.Cart = []domain.CartItem{}

	return copyOrder(order), nil
}

// ListOrders returns the user's orders ordered by ID.
func (s *MemoryStore) ListOrders(userID uint) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.users[userID]; !exists {
		return nil, ErrUserNotFound
	}
	orders := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, copyOrder(o))
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

// GetOrder retrieves one of the user's orders. Foreign-owned orders are
// indistinguishable from missing ones.
func (s *MemoryStore) GetOrder(userID, orderID uint) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[orderID]
	if !exists || order.UserID != userID {
		return domain.Order{}, ErrOrderNotFound
	}
	return copyOrder(order), nil
}

// copyItems returns a fresh slice so callers never alias store-owned state.
func copyItems(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}

func copyUser(u *domain.User) domain.User {
	out := *u
	out.Cart = copyItems(u.Cart)
	return out
}

func copyOrder(o *domain.Order) domain.Order {
	out := *o
	out.Items = copyItems(o.Items)
	return out
}
