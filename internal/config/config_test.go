package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

func TestNewDefaults(t *testing.T) {
	resetFlags()

	cfg := New()

	assert.Equal(t, ":3001", cfg.UserAddress)
	assert.Equal(t, ":3002", cfg.ProductAddress)
	assert.Equal(t, ":3003", cfg.OrderAddress)
	assert.Equal(t, ":3004", cfg.NotificationAddress)
	assert.Equal(t, "http://product-service:3002", cfg.ProductServiceURL)
	assert.Equal(t, "http://notification-service:3004", cfg.NotificationServiceURL)
	assert.Equal(t, "your-secret-key", cfg.JWTSecret)
	assert.Equal(t, "info", cfg.LogLvl)
}

func TestNewEnvOverrides(t *testing.T) {
	resetFlags()
	t.Setenv("ORDER_ADDRESS", ":8083")
	t.Setenv("PRODUCT_SERVICE_ADDRESS", "http://localhost:3002")
	t.Setenv("JWT_SECRET", "another-secret")
	t.Setenv("LOG_LVL", "debug")

	cfg := New()

	assert.Equal(t, ":8083", cfg.OrderAddress)
	assert.Equal(t, "http://localhost:3002", cfg.ProductServiceURL)
	assert.Equal(t, "another-secret", cfg.JWTSecret)
	assert.Equal(t, "debug", cfg.LogLvl)
}

func TestNewAddsScheme(t *testing.T) {
	resetFlags()
	t.Setenv("PRODUCT_SERVICE_ADDRESS", "localhost:3002")
	t.Setenv("NOTIFICATION_SERVICE_ADDRESS", "https://notifications.example.com")

	cfg := New()

	assert.Equal(t, "http://localhost:3002", cfg.ProductServiceURL)
	assert.Equal(t, "https://notifications.example.com", cfg.NotificationServiceURL)
}
