package domain

import "time"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ParseRole validates a role string coming from a client or the database.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleMember:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

type Membership struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedOn time.Time `json:"created_on"`
}

// Member is the listing read model: a membership joined with the
// user's display fields.
type Member struct {
	Membership
	Name  string `json:"name"`
	Email string `json:"email"`
}
