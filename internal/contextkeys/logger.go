package contextkeys

import (
	"context"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// ContextWithLogger puts the logger into the context.
func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from the context, falling back to a
// noop implementation so callers never need a nil check.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok {
		return logger
	}

	return &noopLogger{}
}

type noopLogger struct{}

func (n *noopLogger) Info(msg string, fields port.Fields)             {}
func (n *noopLogger) Warn(msg string, fields port.Fields)             {}
func (n *noopLogger) Error(msg string, err error, fields port.Fields) {}
func (n *noopLogger) Debug(msg string, fields port.Fields)            {}
func (n *noopLogger) WithFields(fields port.Fields) port.LoggerPort   { return n }
