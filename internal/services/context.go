package services

import "context"

type contextKey string

const (
	showKey      contextKey = "show"
	categoryKey  contextKey = "category"
	requestIDKey contextKey = "request_id"
)

// WithShow annotates context with the show being processed.
func WithShow(ctx context.Context, show string) context.Context {
	if show == "" {
		return ctx
	}
	return context.WithValue(ctx, showKey, show)
}

// ShowFromContext returns the show name if present.
func ShowFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(showKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithCategory annotates context with the episode category (filler/canon).
func WithCategory(ctx context.Context, category string) context.Context {
	if category == "" {
		return ctx
	}
	return context.WithValue(ctx, categoryKey, category)
}

// CategoryFromContext returns the episode category if present.
func CategoryFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(categoryKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
