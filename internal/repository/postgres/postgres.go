package postgres

import (
	"database/sql"
	"errors"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.OrganizationRepository
	repository.MembershipRepository
	repository.InvitationRepository
	repository.EmailRecordRepository
	repository.TodoRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		MembershipRepository:   NewMembershipRepository(db),
		InvitationRepository:   NewInvitationRepository(db),
		EmailRecordRepository:  NewEmailRecordRepository(db),
		TodoRepository:         NewTodoRepository(db),
	}
}

// uniqueViolation maps Postgres unique-index violations onto domain
// errors by constraint name. The unique indexes are the write-time
// backstop behind every check-then-act sequence in the services.
func uniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return err
	}
	switch pqErr.Constraint {
	case "organizations_slug_key":
		return domain.ErrSlugConflict
	case "memberships_org_user_key":
		return domain.ErrAlreadyMember
	case "invitations_pending_org_email_idx":
		return domain.ErrDuplicateInvitation
	case "users_email_key":
		return domain.ErrEmailTaken
	}
	return err
}

// notFound converts sql.ErrNoRows into the domain's NotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
