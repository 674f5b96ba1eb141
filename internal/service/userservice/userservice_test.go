package userservice

import (
	"context"
	"testing"

	userrepo "github.com/aturgenev/minimart/internal/repo/user-repo"
	"github.com/aturgenev/minimart/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *Service {
	return New(userrepo.New(), &auth.HashService{}, auth.NewJWTService("test-secret"))
}

func TestRegister(t *testing.T) {
	service := newService()

	user, err := service.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	_, err = service.Register(context.Background(), "alice2", "alice@example.com", "password456")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	service := newService()

	_, err := service.Register(context.Background(), "bob", "bob@example.com", "password123")
	require.NoError(t, err)

	user, err := service.Authenticate(context.Background(), "bob@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	_, err = service.Authenticate(context.Background(), "bob@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Authenticate(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGenerateToken(t *testing.T) {
	service := newService()

	token, err := service.GenerateToken(1, "bob@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestGetProfile(t *testing.T) {
	service := newService()

	_, err := service.GetProfile(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUserNotFound)

	registered, err := service.Register(context.Background(), "carol", "carol@example.com", "password123")
	require.NoError(t, err)

	profile, err := service.GetProfile(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", profile.Username)
}
