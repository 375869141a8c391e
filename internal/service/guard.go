package service

import (
	"context"
	"errors"
	"fmt"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/permission"
	"taskhive-backend/internal/repository"
)

// Guard runs the precondition checks shared by every org-scoped
// operation.
type Guard struct {
	memberships repository.MembershipRepository
}

func NewGuard(memberships repository.MembershipRepository) *Guard {
	return &Guard{memberships: memberships}
}

// EnsureMember returns the caller's membership in the organization, or
// ErrNotAMember when no membership row exists.
func (g *Guard) EnsureMember(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	m, err := g.memberships.Get(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAMember
		}
		return nil, fmt.Errorf("lookup membership: %w", err)
	}
	return m, nil
}

// EnsurePermission checks membership, then checks that the member's
// role holds every requested capability. The missing capabilities are
// attached to the error for logs; clients see a generic denial.
func (g *Guard) EnsurePermission(ctx context.Context, userID, orgID string, caps ...permission.Capability) (*domain.Membership, error) {
	m, err := g.EnsureMember(ctx, userID, orgID)
	if err != nil {
		return nil, err
	}

	ok, err := permission.HasPermission(m.Role, caps...)
	if err != nil {
		return nil, err
	}
	if !ok {
		missing, _ := permission.Missing(m.Role, caps...)
		names := make([]string, len(missing))
		for i, c := range missing {
			names[i] = string(c)
		}
		logger.Warn("Permission denied",
			"user_id", userID, "org_id", orgID, "role", m.Role, "missing", names)
		return nil, &domain.ForbiddenError{Missing: names}
	}
	return m, nil
}
