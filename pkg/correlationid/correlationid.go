package correlationid

import (
	"context"
)

// Header is the HTTP header used to carry the correlation ID.
const Header = "X-Correlation-ID"

type contextKey struct{}

// NewContext returns a new context with the given correlation ID attached.
func NewContext(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, contextKey{}, correlationID)
}

// FromContext extracts the correlation ID from the context, if present.
func FromContext(ctx context.Context) (string, bool) {
	correlationID, ok := ctx.Value(contextKey{}).(string)
	return correlationID, ok
}
