package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Vish501/Video-Sharing-Application/internal/api/http/httpctx"
	"github.com/Vish501/Video-Sharing-Application/internal/logger"
	"github.com/Vish501/Video-Sharing-Application/internal/model"
)

// AuthService defines account and credential operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	RequestVerify(ctx context.Context, userID uuid.UUID) (string, error)
	ConfirmVerify(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// Auth handles HTTP endpoints for registration, login and account lifecycle.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Register creates a new account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, h.logger, "Auth handler: registration failed", err)
		return
	}

	h.logger.Info("Auth handler: user registered", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, userResponse{
		ID:         user.ID,
		Email:      user.Email,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
	})
}

// Login exchanges form credentials for a bearer access token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form body"})
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.service.Login(r.Context(), email, password)
	if err != nil {
		handleError(w, h.logger, "Auth handler: login failed", err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// RequestVerify issues a verification token for the authenticated user.
func (h *Auth) RequestVerify(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpctx.UserID(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	if _, err := h.service.RequestVerify(r.Context(), userID); err != nil {
		handleError(w, h.logger, "Auth handler: verification request failed", err)
		return
	}

	writeJSON(w, http.StatusAccepted, successResponse{Success: true})
}

// Verify confirms an account with a verification token.
func (h *Auth) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.ConfirmVerify(r.Context(), req.Token); err != nil {
		handleError(w, h.logger, "Auth handler: verification failed", err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// ForgotPassword starts the password reset flow. It responds identically
// whether or not the email is registered.
func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		handleError(w, h.logger, "Auth handler: forgot password failed", err)
		return
	}

	writeJSON(w, http.StatusAccepted, successResponse{Success: true})
}

// ResetPassword completes the password reset flow with a reset token.
func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		handleError(w, h.logger, "Auth handler: password reset failed", err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// DeleteAccount removes the authenticated user and all owned posts.
func (h *Auth) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpctx.UserID(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		handleError(w, h.logger, "Auth handler: account deletion failed", err)
		return
	}

	h.logger.Info("Auth handler: account deleted", "user_id", userID)

	w.WriteHeader(http.StatusNoContent)
}
