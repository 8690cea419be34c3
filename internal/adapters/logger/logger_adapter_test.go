package logger_adapter

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

func TestSlogAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug})

	logger.Info("page processed", port.Fields{"listings_found": 12})

	out := buf.String()
	assert.Contains(t, out, "page processed")
	assert.Contains(t, out, "listings_found=12")
}

func TestSlogAdapterLevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Debug("hidden", nil)
	logger.Info("also hidden", nil)
	logger.Warn("visible", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestSlogAdapterErrorAttachesError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf})

	logger.Error("fetch failed", errors.New("connection refused"), port.Fields{"page": 3})

	out := buf.String()
	assert.Contains(t, out, "fetch failed")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "page=3")
}

func TestSlogAdapterWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf}).
		WithFields(port.Fields{"component": "test"})

	logger.Info("hello", nil)

	assert.Contains(t, buf.String(), "component=test")
}

func TestMultiloggerFansOut(t *testing.T) {
	var first, second bytes.Buffer
	multi, err := NewMultiloggerAdapter(
		NewSlogAdapter(SlogConfig{Writer: &first}),
		NewSlogAdapter(SlogConfig{Writer: &second}),
	)
	require.NoError(t, err)

	multi.Info("broadcast", nil)

	assert.Contains(t, first.String(), "broadcast")
	assert.Contains(t, second.String(), "broadcast")
}

func TestMultiloggerRequiresAtLeastOne(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	require.Error(t, err)
}
