// internal/scope/invite.go
package scope

import (
	"github.com/covergrid/brokercore/internal/model"
	"github.com/google/uuid"
)

// rolesByInviteType constrains which role an invitation of a given type may
// confer on acceptance.
var rolesByInviteType = map[model.InvitationType]map[model.Role]bool{
	model.InviteEmployee: {
		model.RoleSuperAdmin:         true,
		model.RoleClaimsEmployee:     true,
		model.RoleOperationsEmployee: true,
		model.RoleAdminEmployee:      true,
	},
	model.InviteAgent: {
		model.RoleAgent: true,
	},
	model.InviteAffiliate: {
		model.RoleAffiliate:   true,
		model.RoleClientAdmin: true,
	},
}

// RoleMatchesType reports whether the role is grantable through the given
// invitation type.
func RoleMatchesType(t model.InvitationType, r model.Role) bool {
	return rolesByInviteType[t][r]
}

// inviteableTypes maps an inviter role to the invitation types it may issue.
var inviteableTypes = map[model.Role]map[model.InvitationType]bool{
	model.RoleSuperAdmin: {
		model.InviteEmployee:  true,
		model.InviteAgent:     true,
		model.InviteAffiliate: true,
	},
	model.RoleAdminEmployee: {
		model.InviteEmployee:  true,
		model.InviteAgent:     true,
		model.InviteAffiliate: true,
	},
	model.RoleOperationsEmployee: {
		model.InviteAgent:     true,
		model.InviteAffiliate: true,
	},
	model.RoleAgent: {
		model.InviteAffiliate: true,
	},
	model.RoleClientAdmin: {
		model.InviteAffiliate: true,
	},
}

// CanInvite reports whether the inviter may issue an invitation of the
// given type and role, targeting the given client (nil for employee
// invitations, which are not client-bound). Like the rest of the package
// it is total and side-effect free.
func CanInvite(inviter *model.Principal, t model.InvitationType, r model.Role, clientID *uuid.UUID) bool {
	if inviter == nil || !inviter.Active {
		return false
	}
	if !RoleMatchesType(t, r) {
		return false
	}
	if !inviteableTypes[inviter.Role][t] {
		return false
	}
	if t == model.InviteEmployee {
		return true
	}
	if clientID == nil {
		// Agent and affiliate invitations are always bound to a client.
		return false
	}
	return HasAccess(inviter, *clientID)
}
