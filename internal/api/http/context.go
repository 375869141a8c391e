package http

import (
	"context"

	"taskhive-backend/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser attaches the authenticated user to the request context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user, or ErrUnauthenticated
// when the request carried no valid session.
func UserFromContext(ctx context.Context) (*domain.User, error) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
