package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Vish501/Video-Sharing-Application/internal/model"
)

// Claims represents JWT claims with token type and user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC. A single shared
// secret is adequate because the same service issues and validates.
type JWT struct {
	secretKey string
	audience  string
	accessTTL time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key and
// audience. accessTTL bounds access token validity.
func NewJWT(secretKey, audience string, accessTTL time.Duration) model.TokenManager {
	return &JWT{secretKey: secretKey, audience: audience, accessTTL: accessTTL}
}

const (
	verifyTTL  = 24 * time.Hour
	resetTTL   = time.Hour
	typeAccess = "access"
	typeVerify = "verify"
	typeReset  = "reset"
)

// GenerateAccessToken creates a short-lived access token.
func (j *JWT) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return j.generate(userID, typeAccess, j.accessTTL)
}

// ParseAccessToken validates and extracts the user ID from an access token.
func (j *JWT) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	return j.parse(tokenString, typeAccess)
}

// GenerateVerifyToken creates an email verification token.
func (j *JWT) GenerateVerifyToken(userID uuid.UUID) (string, error) {
	return j.generate(userID, typeVerify, verifyTTL)
}

// ParseVerifyToken validates and extracts the user ID from a verification token.
func (j *JWT) ParseVerifyToken(tokenString string) (uuid.UUID, error) {
	return j.parse(tokenString, typeVerify)
}

// GenerateResetToken creates a password reset token.
func (j *JWT) GenerateResetToken(userID uuid.UUID) (string, error) {
	return j.generate(userID, typeReset, resetTTL)
}

// ParseResetToken validates and extracts the user ID from a reset token.
func (j *JWT) ParseResetToken(tokenString string) (uuid.UUID, error) {
	return j.parse(tokenString, typeReset)
}

func (j *JWT) generate(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return tokenString, nil
}

func (j *JWT) parse(tokenString, tokenType string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, model.ErrTokenExpired
		}
		return uuid.Nil, model.ErrTokenBadSignature
	}
	if !token.Valid {
		return uuid.Nil, model.ErrTokenBadSignature
	}
	if !j.audienceMatches(claims.Audience) {
		return uuid.Nil, model.ErrTokenAudience
	}
	if claims.TokenType != tokenType {
		return uuid.Nil, model.ErrTokenBadSignature
	}
	return claims.UserID, nil
}

func (j *JWT) audienceMatches(audience jwt.ClaimStrings) bool {
	for _, aud := range audience {
		if aud == j.audience {
			return true
		}
	}
	return false
}
