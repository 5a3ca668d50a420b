package handler

import (
	"testing"

	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers(t *testing.T) {
	h := NewHandlers(newTestServices(), logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	h1 := NewHandlers(newTestServices(), logger.Nop())
	h2 := NewHandlers(newTestServices(), logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
