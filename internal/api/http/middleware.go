package http

import (
	"net/http"
	"strings"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/repository"
	"taskhive-backend/internal/security"
)

// AuthMiddleware resolves the bearer token into a user and injects it
// into the request context. Routes behind it always see a valid user.
type AuthMiddleware struct {
	tokens security.TokenManager
	users  repository.UserRepository
}

func NewAuthMiddleware(tokens security.TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, domain.ErrUnauthenticated)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, domain.ErrUnauthenticated)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, domain.ErrUnauthenticated)
			return
		}

		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, domain.ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// Logging logs each request with its duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
