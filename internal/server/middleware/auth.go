// Package middleware carries the HTTP middleware shared by the resume API
// handlers.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenVerifier checks a bearer token and returns the history owner it
// identifies.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

type contextKey int

const ownerKey contextKey = 0

// RequireToken rejects requests that do not carry a valid bearer token and
// stores the token's owner ID in the request context for the handler.
func RequireToken(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			ownerID, err := verifier.Verify(token)
			if err != nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOwnerID(r.Context(), ownerID)))
		})
	}
}

// bearerToken extracts the token from an Authorization header. The scheme
// comparison is case-insensitive.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// unauthorized writes the JSON error body the rest of the API uses.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
}

// WithOwnerID returns a context carrying the authenticated history owner.
func WithOwnerID(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey, ownerID)
}

// OwnerID returns the history owner stored by RequireToken, or false when the
// request did not pass through it.
func OwnerID(r *http.Request) (uuid.UUID, bool) {
	ownerID, ok := r.Context().Value(ownerKey).(uuid.UUID)
	return ownerID, ok
}
