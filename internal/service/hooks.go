package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vish501/Video-Sharing-Application/internal/logger"
	"github.com/Vish501/Video-Sharing-Application/internal/model"
)

var _ model.LifecycleHooks = (*LogHooks)(nil)

// LogHooks is the default LifecycleHooks implementation: it records each
// event and nothing else. Swap in an email-sending implementation to wire
// real verification and reset mail.
type LogHooks struct {
	logger *logger.Logger
}

func NewLogHooks(logger *logger.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnRegister(_ context.Context, user model.User) {
	h.logger.Info("User registered", "user_id", user.ID)
}

func (h *LogHooks) OnPasswordResetRequested(_ context.Context, userID uuid.UUID, _ string) {
	h.logger.Info("Password reset requested", "user_id", userID)
}

func (h *LogHooks) OnVerifyRequested(_ context.Context, userID uuid.UUID, _ string) {
	h.logger.Info("Email verification requested", "user_id", userID)
}
