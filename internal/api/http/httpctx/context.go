// Package httpctx carries the authenticated user ID through request
// contexts.
package httpctx

import (
	"context"

	"github.com/google/uuid"
)

// ctxKey is an unexported type so only this package can collide with it.
type ctxKey struct{}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserID retrieves the authenticated user's ID from the context.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
