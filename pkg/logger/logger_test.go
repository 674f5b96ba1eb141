package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger("debug", "order-service"))
	assert.NoError(t, InitLogger("info", "order-service"))
	assert.NoError(t, InitLogger("error", "order-service"))

	err := InitLogger("verbose", "order-service")
	assert.ErrorContains(t, err, "unsupported log lvl")
}
