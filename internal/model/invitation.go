// internal/model/invitation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InvitationType string

const (
	InviteEmployee  InvitationType = "employee"
	InviteAgent     InvitationType = "agent"
	InviteAffiliate InvitationType = "affiliate"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
	InvitationRevoked  InvitationStatus = "revoked"
)

// Invitation is a time-bounded, single-use credential binding an email to a
// future account and role. Rows are never deleted; terminal statuses are
// kept for audit.
type Invitation struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Token       string           `gorm:"type:text;not null;uniqueIndex" json:"-"`
	Email       string           `gorm:"type:citext;not null;index" json:"email"`
	Type        InvitationType   `gorm:"type:text;not null" json:"type"`
	Role        Role             `gorm:"type:text;not null" json:"role"`
	Status      InvitationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	FirstName   string           `gorm:"type:text" json:"first_name"`
	LastName    string           `gorm:"type:text" json:"last_name"`
	ClientID    *uuid.UUID       `gorm:"type:uuid;index" json:"client_id,omitempty"`
	AffiliateID *uuid.UUID       `gorm:"type:uuid;index" json:"affiliate_id,omitempty"`
	ExpiresAt   time.Time        `gorm:"not null" json:"expires_at"`
	CreatedByID uuid.UUID        `gorm:"type:uuid;not null" json:"created_by_id"`
	AcceptedAt  *time.Time       `json:"accepted_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ExpiredBy reports whether the invitation is past its expiry at the given
// instant. Expiry is a derived fact: the stored status may still read
// pending when this returns true.
func (i *Invitation) ExpiredBy(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
