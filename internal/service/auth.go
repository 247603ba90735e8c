package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Vish501/Video-Sharing-Application/internal/logger"
	"github.com/Vish501/Video-Sharing-Application/internal/model"
)

// Auth implements registration, login and account lifecycle flows over the
// user store. Lifecycle events are dispatched through model.LifecycleHooks.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	hooks        model.LifecycleHooks
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	hooks model.LifecycleHooks,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		hooks:        hooks,
		logger:       logger,
	}
}

// Register creates an account with a bcrypt-hashed password. New accounts
// are active and unverified.
func (a *Auth) Register(ctx context.Context, email, password string) (model.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return model.User{}, fmt.Errorf("%w: invalid email", model.ErrInvalidArgument)
	}
	if len(password) < 8 {
		return model.User{}, fmt.Errorf("%w: password must be at least 8 characters", model.ErrInvalidArgument)
	}

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: string(hash),
		IsActive:       true,
		IsVerified:     false,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.hooks.OnRegister(ctx, saved)
	a.logger.Info("Auth service: user registered", "user_id", saved.ID)

	return saved, nil
}

// Login checks credentials and issues an access token. Every failure mode
// collapses to ErrUnauthorized so callers can't probe which part failed.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.IsActive {
		return "", model.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", model.ErrUnauthorized
	}

	token, err := a.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return token, nil
}

// RequestVerify issues an email verification token for the user.
func (a *Auth) RequestVerify(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to get user by id: %w", err)
	}
	if user.IsVerified {
		return "", fmt.Errorf("%w: already verified", model.ErrInvalidArgument)
	}

	token, err := a.tokenManager.GenerateVerifyToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue verify token: %w", err)
	}

	a.hooks.OnVerifyRequested(ctx, user.ID, token)

	return token, nil
}

// ConfirmVerify validates a verification token and marks the user verified.
func (a *Auth) ConfirmVerify(ctx context.Context, token string) error {
	userID, err := a.tokenManager.ParseVerifyToken(token)
	if err != nil {
		return fmt.Errorf("%w: bad verification token", model.ErrInvalidArgument)
	}

	if err := a.userStore.SetVerified(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	a.logger.Info("Auth service: user verified", "user_id", userID)

	return nil
}

// ForgotPassword issues a password reset token. Unknown emails are silent
// so the endpoint can't be used to enumerate accounts.
func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	token, err := a.tokenManager.GenerateResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	a.hooks.OnPasswordResetRequested(ctx, user.ID, token)

	return nil
}

// ResetPassword validates a reset token and replaces the stored hash.
func (a *Auth) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := a.tokenManager.ParseResetToken(token)
	if err != nil {
		return fmt.Errorf("%w: bad reset token", model.ErrInvalidArgument)
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", model.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userStore.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password reset", "user_id", userID)

	return nil
}

// DeleteAccount removes the user; owned posts are cascade-deleted with it.
func (a *Auth) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := a.userStore.Delete(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	a.logger.Info("Auth service: account deleted", "user_id", userID)

	return nil
}
