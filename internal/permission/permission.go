// Package permission declares the capability vocabulary and the static
// role capability table. The table is the source of truth; there is no
// runtime composition of statement sets.
package permission

import (
	"taskhive-backend/internal/domain"
)

type Capability string

const (
	TodoCreate Capability = "todo:create"
	TodoUpdate Capability = "todo:update"
	TodoDelete Capability = "todo:delete"

	InviteMember     Capability = "invitation:create"
	CancelInvitation Capability = "invitation:cancel"
	ChangeMemberRole Capability = "member:update"
	RemoveMember     Capability = "member:delete"

	UpdateOrganization Capability = "organization:update"
	DeleteOrganization Capability = "organization:delete"
	LeaveOrganization  Capability = "organization:leave"
)

// All lists every declared capability, in table order.
var All = []Capability{
	TodoCreate, TodoUpdate, TodoDelete,
	InviteMember, CancelInvitation, ChangeMemberRole, RemoveMember,
	UpdateOrganization, DeleteOrganization, LeaveOrganization,
}

var table = map[domain.Role]map[Capability]bool{
	domain.RoleMember: {
		TodoCreate:        true,
		TodoUpdate:        true,
		LeaveOrganization: true,
	},
	domain.RoleAdmin: {
		TodoCreate:         true,
		TodoUpdate:         true,
		TodoDelete:         true,
		InviteMember:       true,
		CancelInvitation:   true,
		ChangeMemberRole:   true,
		RemoveMember:       true,
		UpdateOrganization: true,
		LeaveOrganization:  true,
	},
	domain.RoleOwner: {
		TodoCreate:         true,
		TodoUpdate:         true,
		TodoDelete:         true,
		InviteMember:       true,
		CancelInvitation:   true,
		ChangeMemberRole:   true,
		RemoveMember:       true,
		UpdateOrganization: true,
		DeleteOrganization: true,
		LeaveOrganization:  true,
	},
}

// HasPermission reports whether the role holds every requested
// capability. The check is all-or-nothing. An unrecognized role is a
// data error and fails with ErrInvalidRole rather than a silent deny.
func HasPermission(role domain.Role, caps ...Capability) (bool, error) {
	granted, ok := table[role]
	if !ok {
		return false, domain.ErrInvalidRole
	}
	for _, c := range caps {
		if !granted[c] {
			return false, nil
		}
	}
	return true, nil
}

// Missing returns the subset of caps the role does not hold. Used to
// build the Forbidden diagnostic detail.
func Missing(role domain.Role, caps ...Capability) ([]Capability, error) {
	granted, ok := table[role]
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	var missing []Capability
	for _, c := range caps {
		if !granted[c] {
			missing = append(missing, c)
		}
	}
	return missing, nil
}
