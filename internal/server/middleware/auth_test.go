package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier accepts exactly one token and maps it to one owner.
type stubVerifier struct {
	token   string
	ownerID uuid.UUID
}

func (v *stubVerifier) Verify(token string) (uuid.UUID, error) {
	if token != v.token {
		return uuid.Nil, fmt.Errorf("unknown token")
	}
	return v.ownerID, nil
}

func protectedEcho(t *testing.T, verifier TokenVerifier) (http.Handler, *uuid.UUID) {
	t.Helper()
	var seen uuid.UUID
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := OwnerID(r)
		require.True(t, ok)
		seen = ownerID
		w.WriteHeader(http.StatusOK)
	})
	return RequireToken(verifier)(handler), &seen
}

func TestRequireToken_ValidToken(t *testing.T) {
	ownerID := uuid.New()
	verifier := &stubVerifier{token: "good-token", ownerID: ownerID}
	handler, seen := protectedEcho(t, verifier)

	req := httptest.NewRequest("DELETE", "/resumes", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ownerID, *seen)
}

func TestRequireToken_SchemeIsCaseInsensitive(t *testing.T) {
	verifier := &stubVerifier{token: "good-token", ownerID: uuid.New()}
	handler, _ := protectedEcho(t, verifier)

	req := httptest.NewRequest("POST", "/resumes", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireToken_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no scheme", "good-token"},
		{"wrong scheme", "Basic good-token"},
		{"empty token", "Bearer "},
		{"extra parts", "Bearer good token"},
		{"unknown token", "Bearer forged-token"},
	}

	verifier := &stubVerifier{token: "good-token", ownerID: uuid.New()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireToken(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest("DELETE", "/resumes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			assert.False(t, called)
		})
	}
}

func TestOwnerID_AbsentWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/resumes", nil)

	ownerID, ok := OwnerID(req)

	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, ownerID)
}
