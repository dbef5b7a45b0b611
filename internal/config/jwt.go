package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultTokenTTL = 24 * time.Hour

// JWTConfig holds the signing parameters for resume-history access tokens.
type JWTConfig struct {
	Secret   []byte
	TokenTTL time.Duration
}

// NewJWTConfig reads token signing parameters from the environment:
// JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	ttl := defaultTokenTTL
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
		}
		if hours < 1 {
			return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got %d", hours)
		}
		ttl = time.Duration(hours) * time.Hour
	}

	return &JWTConfig{Secret: []byte(secret), TokenTTL: ttl}, nil
}
