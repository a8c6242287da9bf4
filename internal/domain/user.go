package domain

import "time" // Timestamps

// User Model
type User struct {
	ID           uint       `json:"id"`        // Primary key, assigned by the store
	Username     string     `json:"username"`  // Display name
	Email        string     `json:"email"`     // Unique, stored lowercase
	PasswordHash string     `json:"-"`         // bcrypt hash, never serialized
	Cart         []CartItem `json:"-"`         // Exposed through cart endpoints only
	CreatedAt    time.Time  `json:"createdAt"` // Registration time
}
