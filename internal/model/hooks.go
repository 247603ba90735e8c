package model

import (
	"context"

	"github.com/google/uuid"
)

// LifecycleHooks is invoked by the auth service on account lifecycle
// events. A capability interface rather than a base type to extend:
// implementations can audit, send email, or do nothing.
type LifecycleHooks interface {
	OnRegister(ctx context.Context, user User)
	OnPasswordResetRequested(ctx context.Context, userID uuid.UUID, token string)
	OnVerifyRequested(ctx context.Context, userID uuid.UUID, token string)
}
