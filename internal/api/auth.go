package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"ecommerce_api/internal/store" // Store interface and errors
	"ecommerce_api/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`       // Username must be provided
	Email    string `json:"email" binding:"required,email"`    // Email must be provided and well-formed
	Password string `json:"password" binding:"required,min=6"` // Password must be provided
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RegisterHandler creates a new user account
func RegisterHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			fail(c, http.StatusBadRequest, "Username, email and password are required")
			return
		}
		// Hash the password before storing
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			fail(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		// Create user with lowercase email to ensure uniqueness
		user, err := s.CreateUser(req.Username, strings.ToLower(req.Email), string(hash))
		if err != nil {
			// Duplicate email is the only store failure here
			fail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,    // New user ID
			"email":   user.Email, // Registered email
		}).Info("User registered")
		// Return public user fields (no password hash)
		c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
	}
}

// LoginHandler authenticates a user and returns a signed bearer token
func LoginHandler(s store.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			fail(c, http.StatusBadRequest, "Email and password are required")
			return
		}
		// Fetch user by lowercase email
		user, err := s.GetUserByEmail(strings.ToLower(req.Email))
		if err != nil {
			// Unknown email gets the same message as a wrong password
			fail(c, http.StatusBadRequest, "Invalid email or password")
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			fail(c, http.StatusBadRequest, "Invalid email or password")
			return
		}
		// Generate JWT token carrying the user's identity
		token, err := utils.GenerateJWT(user.ID, user.Email, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			fail(c, http.StatusInternalServerError, "Failed to generate token")
			return
		}
		// Return the token and public user fields
		c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
	}
}
