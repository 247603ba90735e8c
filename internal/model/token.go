package model

import "github.com/google/uuid"

// TokenManager issues and validates signed, time-limited tokens. Tokens are
// self-contained: validity is a function of signature, expiry and audience,
// never of stored state.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
	GenerateVerifyToken(userID uuid.UUID) (string, error)
	ParseVerifyToken(token string) (uuid.UUID, error)
	GenerateResetToken(userID uuid.UUID) (string, error)
	ParseResetToken(token string) (uuid.UUID, error)
}
