package auth

import "context"

type contextKey string

const (
	RequestIDKey  contextKey = "requestID"
	ResourceIDKey contextKey = "resourceID"
)

// WithRequestID injects the request id into the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestID retrieves the request id from the context
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}

// WithResourceID injects the secret or project id taken from the path
func WithResourceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ResourceIDKey, id)
}

// GetResourceID retrieves the secret or project id from the context
func GetResourceID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ResourceIDKey).(string)
	return id, ok
}
