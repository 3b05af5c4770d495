package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-web/internal/models"
)

var testUser = models.User{
	ID:        "user-1",
	CompanyID: "co-1",
	CarrierID: "carrier-1",
	Email:     "driver@example.com",
	Role:      models.RoleDriver,
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(testUser, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "co-1", claims.CompanyID)
	assert.Equal(t, "carrier-1", claims.CarrierID)
	assert.Equal(t, models.RoleDriver, claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRefreshTokenType(t *testing.T) {
	token, err := GenerateRefreshToken(testUser, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(testUser, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(testUser, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}
