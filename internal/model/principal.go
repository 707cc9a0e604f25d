// internal/model/principal.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	// Global-scope roles
	RoleSuperAdmin         Role = "super_admin"
	RoleClaimsEmployee     Role = "claims_employee"
	RoleOperationsEmployee Role = "operations_employee"
	RoleAdminEmployee      Role = "admin_employee"
	RoleAgent              Role = "agent"

	// Scoped roles
	RoleClientAdmin Role = "client_admin"
	RoleAffiliate   Role = "affiliate"
)

// globalRoles see every client; scoped roles are bounded by explicit grants
// or, lacking grants, by the principal's own affiliate.
var globalRoles = map[Role]bool{
	RoleSuperAdmin:         true,
	RoleClaimsEmployee:     true,
	RoleOperationsEmployee: true,
	RoleAdminEmployee:      true,
	RoleAgent:              true,
}

var scopedRoles = map[Role]bool{
	RoleClientAdmin: true,
	RoleAffiliate:   true,
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return globalRoles[r] || scopedRoles[r]
}

// Global reports whether r carries unconstrained client scope.
func (r Role) Global() bool {
	return globalRoles[r]
}

// Scoped reports whether r is bounded by client grants.
func (r Role) Scoped() bool {
	return scopedRoles[r]
}

type Principal struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName    string     `gorm:"type:text;not null" json:"first_name"`
	LastName     string     `gorm:"type:text" json:"last_name"`
	Role         Role       `gorm:"type:text;not null" json:"role"`
	PasswordHash string     `gorm:"type:text" json:"-"`
	Active       bool       `gorm:"not null;default:true" json:"active"`
	AffiliateID  *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"affiliate_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Affiliate *Affiliate    `gorm:"foreignKey:AffiliateID" json:"affiliate,omitempty"`
	Grants    []ClientGrant `gorm:"foreignKey:PrincipalID" json:"grants,omitempty"`
}

// ClientGrant is the explicit access list entry binding a scoped principal
// to a client. Grants are replaced wholesale, never edited in place.
type ClientGrant struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PrincipalID uuid.UUID `gorm:"type:uuid;not null;index:idx_grant_principal_client,unique" json:"principal_id"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index:idx_grant_principal_client,unique" json:"client_id"`
	CreatedAt   time.Time `json:"created_at"`
}
