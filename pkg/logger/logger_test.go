package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleLogging(t *testing.T) {
	Init("production", "info")

	// Startup and shutdown markers must work on the initialized global.
	assert.NotPanics(t, func() {
		ServiceStart("modernshop-backend", "1.0.0", "8080")
		ServiceStop("modernshop-backend")
	})
	assert.NotNil(t, Warn())
}

func TestRequestLoggerContextRoundtrip(t *testing.T) {
	Init("production", "info")

	reqLogger := WithRequestID("abc12345")
	ctx := NewContext(context.Background(), &reqLogger)

	got := WithContext(ctx)
	require.Same(t, &reqLogger, got)

	// A bare context falls back to the global logger.
	assert.Same(t, Get(), WithContext(context.Background()))
}
