package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/permission"
	"taskhive-backend/internal/repository"
	"taskhive-backend/internal/slug"

	"github.com/google/uuid"
)

type organizationService struct {
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
	inviteRepo     repository.InvitationRepository
	guard          *Guard
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
	inviteRepo repository.InvitationRepository,
	guard *Guard,
) OrganizationService {
	return &organizationService{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		inviteRepo:     inviteRepo,
		guard:          guard,
	}
}

// Create generates a unique slug, then persists the organization and
// the creator's owner membership transactionally. The slug's unique
// index is the race backstop; on a conflict the whole sequence is
// retried once with a fresh slug.
func (s *organizationService) Create(ctx context.Context, userID, name string, logo *string) (*domain.Organization, error) {
	const attempts = 2

	var org *domain.Organization
	for i := 0; i < attempts; i++ {
		generated, err := slug.Generate(ctx, name, s.orgRepo.IsSlugAvailable)
		if err != nil {
			return nil, fmt.Errorf("generate slug: %w", err)
		}

		org = &domain.Organization{
			ID:   uuid.NewString(),
			Name: name,
			Slug: generated,
			Logo: logo,
		}
		owner := &domain.Membership{
			ID:     uuid.NewString(),
			OrgID:  org.ID,
			UserID: userID,
			Role:   domain.RoleOwner,
		}

		err = s.orgRepo.Create(ctx, org, owner)
		if err == nil {
			logger.Info("Organization created", "org_id", org.ID, "slug", org.Slug, "owner", userID)
			return org, nil
		}
		if !errors.Is(err, domain.ErrSlugConflict) {
			return nil, fmt.Errorf("create organization: %w", err)
		}
		logger.Warn("Slug conflict on create, retrying", "slug", generated)
	}
	return nil, domain.ErrSlugConflict
}

func (s *organizationService) ListMine(ctx context.Context, userID string) ([]domain.Organization, error) {
	return s.membershipRepo.ListOrgsForUser(ctx, userID)
}

// GetBySlug returns the organization with members and pending
// invitations. Membership is verified before any detail is returned; a
// caller outside the org gets the same NotAMember as for reads of
// member data.
func (s *organizationService) GetBySlug(ctx context.Context, userID, orgSlug string) (*domain.OrganizationDetail, error) {
	org, err := s.orgRepo.GetBySlug(ctx, orgSlug)
	if err != nil {
		return nil, err
	}

	m, err := s.guard.EnsureMember(ctx, userID, org.ID)
	if err != nil {
		return nil, err
	}

	members, err := s.membershipRepo.ListMembers(ctx, org.ID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	invites, err := s.inviteRepo.ListPendingByOrg(ctx, org.ID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list pending invitations: %w", err)
	}

	return &domain.OrganizationDetail{
		Organization: *org,
		CurrentRole:  m.Role,
		Members:      members,
		Invitations:  invites,
	}, nil
}

func (s *organizationService) Update(ctx context.Context, userID, orgID string, name, logo *string) (*domain.Organization, error) {
	if _, err := s.guard.EnsurePermission(ctx, userID, orgID, permission.UpdateOrganization); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if name != nil {
		org.Name = *name
	}
	if logo != nil {
		org.Logo = logo
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("update organization: %w", err)
	}
	return org, nil
}

// Delete cascades over memberships, pending invitations and todos as
// one transaction in the repository.
func (s *organizationService) Delete(ctx context.Context, userID, orgID string) error {
	if _, err := s.guard.EnsurePermission(ctx, userID, orgID, permission.DeleteOrganization); err != nil {
		return err
	}

	if err := s.orgRepo.Delete(ctx, orgID); err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	logger.Info("Organization deleted", "org_id", orgID, "deleted_by", userID)
	return nil
}

// Leave removes the caller's own membership. The sole owner may not
// leave; ownership has to be transferred first via ChangeRole.
func (s *organizationService) Leave(ctx context.Context, userID, orgID string) error {
	m, err := s.guard.EnsurePermission(ctx, userID, orgID, permission.LeaveOrganization)
	if err != nil {
		return err
	}

	if m.Role == domain.RoleOwner {
		owners, err := s.membershipRepo.CountByRole(ctx, orgID, domain.RoleOwner)
		if err != nil {
			return fmt.Errorf("count owners: %w", err)
		}
		if owners <= 1 {
			return domain.ErrLastOwner
		}
	}

	return s.membershipRepo.Delete(ctx, userID, orgID)
}

// RemoveMember removes another member. Self-removal goes through Leave,
// which carries the last-owner check; this path rejects it outright.
func (s *organizationService) RemoveMember(ctx context.Context, actorID, orgID, memberUserID string) error {
	if actorID == memberUserID {
		return domain.ErrInvalidOperation
	}

	if _, err := s.guard.EnsurePermission(ctx, actorID, orgID, permission.RemoveMember); err != nil {
		return err
	}

	target, err := s.guard.EnsureMember(ctx, memberUserID, orgID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleOwner {
		owners, err := s.membershipRepo.CountByRole(ctx, orgID, domain.RoleOwner)
		if err != nil {
			return fmt.Errorf("count owners: %w", err)
		}
		if owners <= 1 {
			return domain.ErrLastOwner
		}
	}

	return s.membershipRepo.Delete(ctx, memberUserID, orgID)
}

// ChangeRole updates another member's role. Demoting the only owner is
// rejected for the same reason leaving is.
func (s *organizationService) ChangeRole(ctx context.Context, actorID, orgID, memberUserID string, role domain.Role) error {
	if _, err := domain.ParseRole(string(role)); err != nil {
		return err
	}

	if _, err := s.guard.EnsurePermission(ctx, actorID, orgID, permission.ChangeMemberRole); err != nil {
		return err
	}

	target, err := s.guard.EnsureMember(ctx, memberUserID, orgID)
	if err != nil {
		return err
	}
	if target.Role == role {
		return nil
	}

	if target.Role == domain.RoleOwner && role != domain.RoleOwner {
		owners, err := s.membershipRepo.CountByRole(ctx, orgID, domain.RoleOwner)
		if err != nil {
			return fmt.Errorf("count owners: %w", err)
		}
		if owners <= 1 {
			return domain.ErrLastOwner
		}
	}

	return s.membershipRepo.UpdateRole(ctx, memberUserID, orgID, role)
}
