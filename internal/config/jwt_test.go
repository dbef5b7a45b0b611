package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "resume-history-signing-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)

	assert.Equal(t, []byte("resume-history-signing-key"), cfg.Secret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestNewJWTConfig_CustomTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "resume-history-signing-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "72")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)

	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestNewJWTConfig_BadTTL(t *testing.T) {
	tests := []struct {
		name  string
		hours string
	}{
		{"not a number", "one day"},
		{"zero", "0"},
		{"negative", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "resume-history-signing-key")
			t.Setenv("JWT_EXPIRATION_HOURS", tt.hours)

			cfg, err := NewJWTConfig()

			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, "JWT_EXPIRATION_HOURS")
		})
	}
}
