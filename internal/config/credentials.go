// Package config provides API credential configuration and verification.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// CredentialConfig holds configuration for API key verification. Clients
// exchange the API key for a JWT at the token endpoint; only the bcrypt
// hash of the key is kept in the environment.
type CredentialConfig struct {
	APIKeyHash string
	BcryptCost int
}

// NewCredentialConfig creates a credential configuration from environment
// variables. It reads API_KEY_HASH (required for auth) and BCRYPT_COST
// (default: 12, used when hashing new keys).
func NewCredentialConfig() (*CredentialConfig, error) {
	hash := os.Getenv("API_KEY_HASH")
	if hash == "" {
		return nil, fmt.Errorf("API_KEY_HASH is required but not set")
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &CredentialConfig{
		APIKeyHash: hash,
		BcryptCost: cost,
	}

	if err := config.normalizeCredentials(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalizeCredentials validates the configuration.
func (c *CredentialConfig) normalizeCredentials() error {
	if c.APIKeyHash == "" {
		return fmt.Errorf("API_KEY_HASH cannot be empty")
	}
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashAPIKey hashes an API key using bcrypt, for provisioning new
// credentials.
func (c *CredentialConfig) HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash API key: %w", err)
	}
	return string(hash), nil
}

// VerifyAPIKey verifies a presented API key against the configured hash.
func (c *CredentialConfig) VerifyAPIKey(key string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(c.APIKeyHash), []byte(key))
	return err == nil
}
