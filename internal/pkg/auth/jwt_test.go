package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozan/alumnisphere/internal/app/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    7,
		Name:  "Ayse Yilmaz",
		Email: "ayse@example.com",
		Role:  models.RoleStudent,
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 720 * time.Hour,
		TokenIssuer:    "test",
	})

	token, expiresIn, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	assert.Equal(t, int64(720*3600), expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ayse@example.com", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "test",
	})

	token, _, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "one", AccessTokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "two", AccessTokenExp: time.Hour})

	token, _, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidateAndExtractClaims_Empty(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
