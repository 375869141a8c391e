package domain

import "time"

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusRejected InvitationStatus = "REJECTED"
	InvitationStatusCanceled InvitationStatus = "CANCELED"
	// Derived at read time when a PENDING invitation is past its expiry.
	// The cronjob sweep also stores it for rows long past expiry.
	InvitationStatusExpired InvitationStatus = "EXPIRED"
)

type Invitation struct {
	ID        string           `json:"id"`
	OrgID     string           `json:"org_id"`
	Email     string           `json:"email"`
	Role      Role             `json:"role"`
	Status    InvitationStatus `json:"status"`
	InviterID string           `json:"inviter_id"`
	ExpiresOn time.Time        `json:"expires_on"`
	CreatedOn time.Time        `json:"created_on"`
}

// Expired reports whether the invitation is past its expiry, regardless
// of the stored status.
func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresOn)
}

// EffectiveStatus resolves the read-time status: a stored PENDING past
// its expiry reads as EXPIRED.
func (i *Invitation) EffectiveStatus(now time.Time) InvitationStatus {
	if i.Status == InvitationStatusPending && i.Expired(now) {
		return InvitationStatusExpired
	}
	return i.Status
}

// InvitationDetail is the unauthenticated lookup read model for the
// acceptance landing page. It carries only what that page renders,
// never other members' data.
type InvitationDetail struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	Role         Role             `json:"role"`
	Status       InvitationStatus `json:"status"`
	OrgName      string           `json:"organization_name"`
	OrgSlug      string           `json:"organization_slug"`
	InviterName  string           `json:"inviter_name"`
	InviterEmail string           `json:"inviter_email"`
	ExpiresOn    time.Time        `json:"expires_on"`
}
