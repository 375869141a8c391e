package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrNotAMember      = errors.New("not a member of this organization")
	ErrForbidden       = errors.New("missing required permission")
	ErrInvalidRole     = errors.New("invalid role")
	ErrNotFound        = errors.New("not found")
	ErrSlugConflict    = errors.New("slug already taken")

	ErrInvalidState        = errors.New("invitation is not pending")
	ErrInvitationExpired   = errors.New("invitation has expired")
	ErrWrongAccount        = errors.New("invitation was issued to a different email")
	ErrAlreadyProcessed    = errors.New("invitation already processed")
	ErrAlreadyMember       = errors.New("user is already a member of this organization")
	ErrLastOwner           = errors.New("organization must keep at least one owner")
	ErrInvalidOperation    = errors.New("operation not allowed")
	ErrDuplicateInvitation = errors.New("a pending invitation already exists for this email")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ForbiddenError carries the capabilities the caller was missing. The
// detail is for logs; clients get a generic denial.
type ForbiddenError struct {
	Missing []string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("missing required permission: %s", strings.Join(e.Missing, ", "))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
