package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort   string // HTTP port the server listens on
	JWTSecret string // JWT signing secret
	IsProd    bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000" // Default port
	}
	return &Config{
		AppPort:   port,                           // HTTP port
		JWTSecret: os.Getenv("JWT_SECRET"),        // JWT signing secret
		IsProd:    os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
