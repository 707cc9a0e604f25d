// internal/model/policy.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PolicyStatus string

const (
	PolicyActive    PolicyStatus = "active"
	PolicySuspended PolicyStatus = "suspended"
	PolicyCancelled PolicyStatus = "cancelled"
)

// Policy is a coverage contract owned by a client.
type Policy struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClientID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"client_id"`
	Number    string       `gorm:"type:text;not null;uniqueIndex" json:"number"`
	Carrier   string       `gorm:"type:text" json:"carrier"`
	Status    PolicyStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	StartsAt  time.Time    `json:"starts_at"`
	EndsAt    *time.Time   `json:"ends_at,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Members []PolicyAffiliate `gorm:"foreignKey:PolicyID" json:"members,omitempty"`
}

// PolicyAffiliate is the affiliate-membership join for a policy. A claim's
// patient must be reachable from the claim's policy through this join.
type PolicyAffiliate struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PolicyID    uuid.UUID `gorm:"type:uuid;not null;index:idx_policy_affiliate,unique" json:"policy_id"`
	AffiliateID uuid.UUID `gorm:"type:uuid;not null;index:idx_policy_affiliate,unique" json:"affiliate_id"`
	CreatedAt   time.Time `json:"created_at"`
}
