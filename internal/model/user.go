package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
	SetVerified(ctx context.Context, id uuid.UUID) error
	// Delete removes the user row. Posts owned by the user are removed
	// by the database in the same transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a registered account.
type User struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	IsActive       bool
	IsVerified     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
