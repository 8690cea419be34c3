package contextkeys

import (
	"context"

	"github.com/google/uuid"
)

type runIDKeyType struct{}

var runIDKey = runIDKeyType{}

// ContextWithRunID attaches the scrape-invocation ID to the context.
func ContextWithRunID(ctx context.Context, runID uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext returns the scrape-invocation ID or uuid.Nil.
func RunIDFromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(runIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
