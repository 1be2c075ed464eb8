// Package auth, as part of the authentication module.
// This file, `context.go`, carries the authenticated identity through the
// request context. The middleware stores the validated claims; handlers in
// this package and in users read them back with the helpers below.
package auth

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// keys defined by other packages.
type contextKey string

const claimsContextKey contextKey = "auth_claims"

// NewContextWithClaims returns a child context carrying the validated claims.
func NewContextWithClaims(ctx context.Context, claims *CustomClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the validated claims stored by the middleware.
// The bool reports whether claims were present and of the expected type.
func ClaimsFromContext(ctx context.Context) (*CustomClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*CustomClaims)
	return claims, ok
}

// UserIDFromContext returns the authenticated user's ID. Profile handlers
// derive the profile owner from this, never from client input.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
