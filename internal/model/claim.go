// internal/model/claim.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ClaimStatus string

const (
	ClaimSubmitted   ClaimStatus = "submitted"
	ClaimUnderReview ClaimStatus = "under_review"
	ClaimApproved    ClaimStatus = "approved"
	ClaimRejected    ClaimStatus = "rejected"
)

// Claim is a reimbursement request against a policy. AffiliateID is the
// billing owner; PatientID is the covered person the claim is for, which
// may be a dependent of the owner.
type Claim struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Status      ClaimStatus `gorm:"type:text;not null;default:'submitted'" json:"status"`
	PolicyID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"policy_id"`
	AffiliateID uuid.UUID   `gorm:"type:uuid;not null;index" json:"affiliate_id"`
	PatientID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"patient_id"`
	Description string      `gorm:"type:text" json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Invoices []ClaimInvoice `gorm:"foreignKey:ClaimID" json:"invoices,omitempty"`
}

// ClaimInvoice is a billed line item attached to a claim. Amounts are
// stored in cents.
type ClaimInvoice struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClaimID     uuid.UUID `gorm:"type:uuid;not null;index" json:"claim_id"`
	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	Currency    string    `gorm:"type:text;not null;default:'USD'" json:"currency"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
