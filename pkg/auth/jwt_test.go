package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateJWT(7, "bob@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "bob@example.com", claims.Email)
	assert.Equal(t, "user-service", claims.Issuer)
	assert.NotEmpty(t, claims.Id)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret")

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("other-secret").GenerateJWT(7, "bob@example.com")
	require.NoError(t, err)

	_, err = NewJWTService("test-secret").ValidateToken(token)
	assert.Error(t, err)
}
