package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h1zik/ELLAVERABEAUTY/config"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		SecretKey:       "test-secret-key",
		Issuer:          "ellavera-api",
		ExpirationHours: 1,
	}
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.NewString()

	token, err := GenerateAccessToken(userID, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := VerifyAccessToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestGenerateAccessToken_MissingSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SecretKey = ""

	_, err := GenerateAccessToken(uuid.NewString(), cfg)
	require.Error(t, err)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpirationHours = -1 // already in the past

	token, err := GenerateAccessToken(uuid.NewString(), cfg)
	require.NoError(t, err)

	_, err = VerifyAccessToken(token, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTokenExpired))
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateAccessToken(uuid.NewString(), cfg)
	require.NoError(t, err)

	other := cfg
	other.SecretKey = "a-different-secret"

	_, err = VerifyAccessToken(token, other)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTokenInvalid))
}

func TestVerifyAccessToken_IssuerMismatch(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateAccessToken(uuid.NewString(), cfg)
	require.NoError(t, err)

	other := cfg
	other.Issuer = "someone-else"

	_, err = VerifyAccessToken(token, other)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTokenInvalid))
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	cfg := testJWTConfig()

	_, err := VerifyAccessToken("not.a.token", cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTokenInvalid))
}
