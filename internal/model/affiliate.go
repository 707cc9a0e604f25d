// internal/model/affiliate.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Invariant violations for the owner/dependent relation.
var (
	ErrOwnerWithPrimary         = errors.New("owner affiliate cannot have a primary affiliate")
	ErrDependentWithoutPrimary  = errors.New("dependent affiliate requires a primary affiliate")
	ErrDependentPrimaryMismatch = errors.New("primary affiliate must be an owner in the same client")
)

type AffiliateType string

const (
	AffiliateOwner     AffiliateType = "owner"
	AffiliateDependent AffiliateType = "dependent"
)

// Affiliate is an insured person belonging to a client. An OWNER is a
// primary policyholder; a DEPENDENT is covered through an OWNER referenced
// by PrimaryAffiliateID. The relation is depth-1 only: a dependent can
// never be the primary of another row.
type Affiliate struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClientID           uuid.UUID     `gorm:"type:uuid;not null;index" json:"client_id"`
	Type               AffiliateType `gorm:"type:text;not null" json:"type"`
	PrimaryAffiliateID *uuid.UUID    `gorm:"type:uuid;index" json:"primary_affiliate_id,omitempty"`
	Email              string        `gorm:"type:citext;index" json:"email"`
	FirstName          string        `gorm:"type:text;not null" json:"first_name"`
	LastName           string        `gorm:"type:text" json:"last_name"`
	BirthDate          *time.Time    `json:"birth_date,omitempty"`
	Active             bool          `gorm:"not null;default:true" json:"active"`
	UserID             *uuid.UUID    `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// ValidatePrimary checks the owner/dependent invariant against the resolved
// primary row. Owners carry no primary; dependents must reference an owner
// in the same client.
func (a *Affiliate) ValidatePrimary(primary *Affiliate) error {
	switch a.Type {
	case AffiliateOwner:
		if a.PrimaryAffiliateID != nil {
			return ErrOwnerWithPrimary
		}
	case AffiliateDependent:
		if a.PrimaryAffiliateID == nil || primary == nil {
			return ErrDependentWithoutPrimary
		}
		if primary.Type != AffiliateOwner || primary.ClientID != a.ClientID {
			return ErrDependentPrimaryMismatch
		}
	}
	return nil
}
