package contextkeys

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

func TestLoggerRoundTrip(t *testing.T) {
	stored := &noopLogger{}
	ctx := ContextWithLogger(context.Background(), stored)

	got := LoggerFromContext(ctx)
	assert.Same(t, port.LoggerPort(stored), got)
}

// A bare context yields a usable noop logger, never nil.
func TestLoggerFallback(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info("safe to call", nil)
	assert.NotNil(t, logger.WithFields(port.Fields{"k": "v"}))
}

func TestRunIDRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := ContextWithRunID(context.Background(), id)
	assert.Equal(t, id, RunIDFromContext(ctx))
}

func TestRunIDFallback(t *testing.T) {
	assert.Equal(t, uuid.Nil, RunIDFromContext(context.Background()))
}
