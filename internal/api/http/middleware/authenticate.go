package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Vish501/Video-Sharing-Application/internal/api/http/httpctx"
	"github.com/Vish501/Video-Sharing-Application/internal/logger"
	"github.com/Vish501/Video-Sharing-Application/internal/model"
)

// TokenParser resolves user IDs from bearer tokens.
type TokenParser interface {
	ParseAccessToken(token string) (uuid.UUID, error)
}

// UserLoader loads users by ID for the identity check.
type UserLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Authenticate is the identity resolver: it validates the bearer token,
// loads the user, and rejects missing, invalid or inactive identities. It
// gates every post-mutating and feed route.
type Authenticate struct {
	tokens TokenParser
	users  UserLoader
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, users UserLoader, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, users: users, logger: logger}
}

// Handler wraps next with bearer authentication. On success the user ID is
// injected into the request context.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.resolve(r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}

		next.ServeHTTP(w, r.WithContext(httpctx.WithUserID(r.Context(), userID)))
	})
}

func (m *Authenticate) resolve(r *http.Request) (uuid.UUID, error) {
	tokenString := bearerToken(r)
	if tokenString == "" {
		return uuid.Nil, model.ErrUnauthorized
	}

	userID, err := m.tokens.ParseAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, model.ErrUnauthorized
	}
	if userID == uuid.Nil {
		return uuid.Nil, model.ErrUnauthorized
	}

	user, err := m.users.GetByID(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			m.logger.Error("Authenticate: failed to load user", "user_id", userID, "error", err)
		}
		return uuid.Nil, model.ErrUnauthorized
	}
	if !user.IsActive {
		return uuid.Nil, model.ErrUnauthorized
	}

	return user.ID, nil
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
