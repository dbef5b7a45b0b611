package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/config"
)

// tokenIssuer names this service in the tokens it mints; Verify rejects
// tokens issued by anything else.
const tokenIssuer = "resume-parser"

// TokenService mints and verifies the bearer tokens that scope access to
// stored resume history. The token subject is the owner ID that groups a
// holder's resumes. Implements middleware.TokenVerifier.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service from signing config.
func NewTokenService(cfg *config.JWTConfig) *TokenService {
	return &TokenService{secret: cfg.Secret, ttl: cfg.TokenTTL}
}

// Issue mints a signed token for the given history owner.
func (s *TokenService) Issue(ownerID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   ownerID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, expiry, and issuer of a token and returns the
// owner ID carried in its subject.
func (s *TokenService) Verify(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("token string is empty")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token: %w", err)
	}

	ownerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token subject: %w", err)
	}
	return ownerID, nil
}
