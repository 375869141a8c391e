package repository

import (
	"context"
	"time"

	"taskhive-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type OrganizationRepository interface {
	// Create persists the organization and the creator's owner
	// membership in one transaction. An org without an owner must never
	// be observable.
	Create(ctx context.Context, org *domain.Organization, owner *domain.Membership) error
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	IsSlugAvailable(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, org *domain.Organization) error
	// Delete removes the organization and cascades over its todos,
	// invitations and memberships in one transaction.
	Delete(ctx context.Context, id string) error
}

type MembershipRepository interface {
	Get(ctx context.Context, userID, orgID string) (*domain.Membership, error)
	// ListOrgsForUser returns organizations in membership creation
	// order, oldest first, so callers can treat index 0 as the default.
	ListOrgsForUser(ctx context.Context, userID string) ([]domain.Organization, error)
	ListMembers(ctx context.Context, orgID string) ([]domain.Member, error)
	UpdateRole(ctx context.Context, userID, orgID string, role domain.Role) error
	Delete(ctx context.Context, userID, orgID string) error
	CountByRole(ctx context.Context, orgID string, role domain.Role) (int, error)
}

type InvitationRepository interface {
	// Create cancels any prior pending invitation for the same
	// (org, email) pair and inserts the new one in one transaction.
	Create(ctx context.Context, inv *domain.Invitation) error
	GetByID(ctx context.Context, id string) (*domain.Invitation, error)
	ListPendingByOrg(ctx context.Context, orgID string, now time.Time) ([]domain.Invitation, error)
	UpdateStatus(ctx context.Context, id string, status domain.InvitationStatus) error
	// Accept marks the invitation accepted and inserts the membership
	// in one transaction. The membership insert is idempotent against
	// an existing (org, user) row.
	Accept(ctx context.Context, inv *domain.Invitation, membership *domain.Membership) error
	// MarkExpired stores EXPIRED on pending invitations whose expiry
	// passed before the cutoff. Returns the number of rows flipped.
	MarkExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type EmailRecordRepository interface {
	Create(ctx context.Context, rec *domain.EmailRecord) error
	MarkSent(ctx context.Context, id string, completedOn time.Time) error
	MarkFailed(ctx context.Context, id string, errMsg string, completedOn time.Time) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	ListByOrg(ctx context.Context, orgID string) ([]domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id string) error
}
