// Package requestctx carries request-scoped identity through context.
package requestctx

import "context"

// sessionTokenContextKey is the context key for the admin session token.
type sessionTokenContextKey struct{}

// WithSessionToken stores the operator session token in context.
func WithSessionToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionTokenContextKey{}, token)
}

// SessionTokenFromContext returns the session token stored in context.
func SessionTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(sessionTokenContextKey{}).(string)
	return value
}
