package domain

import "time"

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Logo      *string   `json:"logo,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

// OrganizationDetail is the member-facing read model: the organization
// with the caller's role, the member list and pending invitations.
type OrganizationDetail struct {
	Organization
	CurrentRole Role         `json:"current_role"`
	Members     []Member     `json:"members"`
	Invitations []Invitation `json:"invitations"`
}
