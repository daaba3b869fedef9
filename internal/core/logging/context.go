package logging

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	variantKey   contextKey = "variant"
)

// WithSessionID adds a picker session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithVariant adds the picker variant ("picker" or "phone") to the context.
func WithVariant(ctx context.Context, variant string) context.Context {
	return context.WithValue(ctx, variantKey, variant)
}

// GetSessionID retrieves the session ID from the context.
// Returns empty string if not present.
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// GetVariant retrieves the picker variant from the context.
// Returns empty string if not present.
func GetVariant(ctx context.Context) string {
	if v, ok := ctx.Value(variantKey).(string); ok {
		return v
	}
	return ""
}
