package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/email"
	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/permission"
	"taskhive-backend/internal/repository"

	"github.com/google/uuid"
)

type invitationService struct {
	inviteRepo     repository.InvitationRepository
	membershipRepo repository.MembershipRepository
	orgRepo        repository.OrganizationRepository
	userRepo       repository.UserRepository
	guard          *Guard
	dispatcher     EmailDispatcher
	siteURL        string
	expiry         time.Duration
}

func NewInvitationService(
	inviteRepo repository.InvitationRepository,
	membershipRepo repository.MembershipRepository,
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	guard *Guard,
	dispatcher EmailDispatcher,
	siteURL string,
	expiry time.Duration,
) InvitationService {
	return &invitationService{
		inviteRepo:     inviteRepo,
		membershipRepo: membershipRepo,
		orgRepo:        orgRepo,
		userRepo:       userRepo,
		guard:          guard,
		dispatcher:     dispatcher,
		siteURL:        siteURL,
		expiry:         expiry,
	}
}

// Invite creates a pending invitation, superseding any prior pending
// one for the same (org, email) pair, and schedules the invite email
// after the write commits. Email delivery never affects the outcome.
func (s *invitationService) Invite(ctx context.Context, inviterID, orgID, targetEmail string, role domain.Role) (*domain.Invitation, error) {
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, err
	}

	if _, err := s.guard.EnsurePermission(ctx, inviterID, orgID, permission.InviteMember); err != nil {
		return nil, err
	}

	targetEmail = strings.ToLower(strings.TrimSpace(targetEmail))

	// An existing member needs no invitation.
	if existing, err := s.userRepo.GetByEmail(ctx, targetEmail); err == nil {
		if _, err := s.membershipRepo.Get(ctx, existing.ID, orgID); err == nil {
			return nil, domain.ErrAlreadyMember
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("lookup membership: %w", err)
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invitation{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		Email:     targetEmail,
		Role:      role,
		Status:    domain.InvitationStatusPending,
		InviterID: inviterID,
		ExpiresOn: time.Now().UTC().Add(s.expiry),
	}
	if err := s.inviteRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	inviterUser, err := s.userRepo.GetByID(ctx, inviterID)
	if err != nil {
		// The invitation is committed; a missing inviter profile only
		// degrades the email copy.
		logger.Warn("Inviter lookup failed after invitation create", "inviter_id", inviterID, "error", err)
		inviterUser = &domain.User{Name: "A teammate"}
	}

	acceptURL := fmt.Sprintf("%s/accept-invite/%s", strings.TrimRight(s.siteURL, "/"), inv.ID)
	tpl := email.NewOrganizationInviteTemplate(inviterUser.Name, org.Name, string(role), acceptURL)
	s.dispatcher.Dispatch(ctx, targetEmail, "", tpl, "organization-invite")

	logger.Info("Invitation created", "invitation_id", inv.ID, "org_id", orgID, "role", role)
	return inv, nil
}

// Accept transitions a pending, unexpired invitation to accepted and
// creates the membership in one transaction. Only the account whose
// email matches the invitation target may accept.
func (s *invitationService) Accept(ctx context.Context, userID, invitationID string) (*domain.Membership, error) {
	inv, err := s.inviteRepo.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(user.Email, inv.Email) {
		return nil, domain.ErrWrongAccount
	}

	switch inv.Status {
	case domain.InvitationStatusPending:
	case domain.InvitationStatusAccepted:
		return nil, domain.ErrAlreadyProcessed
	default:
		return nil, domain.ErrInvalidState
	}
	if inv.Expired(time.Now().UTC()) {
		return nil, domain.ErrInvitationExpired
	}

	m := &domain.Membership{
		ID:     uuid.NewString(),
		OrgID:  inv.OrgID,
		UserID: userID,
		Role:   inv.Role,
	}
	if err := s.inviteRepo.Accept(ctx, inv, m); err != nil {
		return nil, err
	}

	logger.Info("Invitation accepted", "invitation_id", inv.ID, "org_id", inv.OrgID, "user_id", userID)
	return m, nil
}

// Reject transitions a pending invitation to rejected. Same identity
// rule as Accept; no membership is created.
func (s *invitationService) Reject(ctx context.Context, userID, invitationID string) error {
	inv, err := s.inviteRepo.GetByID(ctx, invitationID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(user.Email, inv.Email) {
		return domain.ErrWrongAccount
	}

	if inv.Status != domain.InvitationStatusPending {
		return domain.ErrInvalidState
	}

	return s.inviteRepo.UpdateStatus(ctx, inv.ID, domain.InvitationStatusRejected)
}

// Cancel withdraws a pending invitation. Canceling one already in a
// terminal state is an InvalidState error, applied consistently.
func (s *invitationService) Cancel(ctx context.Context, actorID, orgID, invitationID string) error {
	if _, err := s.guard.EnsurePermission(ctx, actorID, orgID, permission.CancelInvitation); err != nil {
		return err
	}

	inv, err := s.inviteRepo.GetByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv.OrgID != orgID {
		return domain.ErrNotFound
	}
	if inv.Status != domain.InvitationStatusPending {
		return domain.ErrInvalidState
	}

	return s.inviteRepo.UpdateStatus(ctx, inv.ID, domain.InvitationStatusCanceled)
}

// Get is the unauthenticated lookup behind the acceptance landing
// page. It returns only what that page renders. An invitation whose
// organization has been deleted resolves to NotFound.
func (s *invitationService) Get(ctx context.Context, invitationID string) (*domain.InvitationDetail, error) {
	inv, err := s.inviteRepo.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(ctx, inv.OrgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	detail := &domain.InvitationDetail{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      inv.Role,
		Status:    inv.EffectiveStatus(time.Now().UTC()),
		OrgName:   org.Name,
		OrgSlug:   org.Slug,
		ExpiresOn: inv.ExpiresOn,
	}

	if inviter, err := s.userRepo.GetByID(ctx, inv.InviterID); err == nil {
		detail.InviterName = inviter.Name
		detail.InviterEmail = inviter.Email
	}

	return detail, nil
}
