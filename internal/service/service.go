package service

import (
	"context"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/email"
)

// TokenPair is the session credential set returned by auth operations.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Signup(ctx context.Context, email, name, password string) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	// SignInAnonymous is available only when debug mode is enabled.
	SignInAnonymous(ctx context.Context) (*domain.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout invalidates the session on the client side. Tokens are
	// stateless, so the server only acknowledges; a token denylist
	// would slot in here if one is ever needed.
	Logout(ctx context.Context, refreshToken string) error
	UpdateProfile(ctx context.Context, userID, name string) (*domain.User, error)
}

type OrganizationService interface {
	Create(ctx context.Context, userID, name string, logo *string) (*domain.Organization, error)
	ListMine(ctx context.Context, userID string) ([]domain.Organization, error)
	GetBySlug(ctx context.Context, userID, slug string) (*domain.OrganizationDetail, error)
	Update(ctx context.Context, userID, orgID string, name, logo *string) (*domain.Organization, error)
	Delete(ctx context.Context, userID, orgID string) error
	Leave(ctx context.Context, userID, orgID string) error
	RemoveMember(ctx context.Context, actorID, orgID, memberUserID string) error
	ChangeRole(ctx context.Context, actorID, orgID, memberUserID string, role domain.Role) error
}

type InvitationService interface {
	Invite(ctx context.Context, inviterID, orgID, targetEmail string, role domain.Role) (*domain.Invitation, error)
	Accept(ctx context.Context, userID, invitationID string) (*domain.Membership, error)
	Reject(ctx context.Context, userID, invitationID string) error
	Cancel(ctx context.Context, actorID, orgID, invitationID string) error
	// Get is the unauthenticated lookup for the acceptance landing page.
	Get(ctx context.Context, invitationID string) (*domain.InvitationDetail, error)
}

type TodoService interface {
	List(ctx context.Context, userID, orgID string) ([]domain.Todo, error)
	Create(ctx context.Context, userID, orgID, title string) (*domain.Todo, error)
	Toggle(ctx context.Context, userID, orgID, todoID string) (*domain.Todo, error)
	Delete(ctx context.Context, userID, orgID, todoID string) error
}

// EmailDispatcher schedules an outbound email after the primary
// mutation has committed. Delivery is best effort: failures are
// recorded on the audit row and logged, never returned to the caller.
type EmailDispatcher interface {
	Dispatch(ctx context.Context, to, toName string, tpl *email.Template, triggeredBy string)
	// Wait blocks until all in-flight deliveries finish. Used on
	// shutdown and in tests.
	Wait()
}
