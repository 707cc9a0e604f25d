// internal/model/client.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a tenant organization. It owns policies and affiliates.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	TaxID     string    `gorm:"type:text" json:"tax_id"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Policies   []Policy    `gorm:"foreignKey:ClientID" json:"policies,omitempty"`
	Affiliates []Affiliate `gorm:"foreignKey:ClientID" json:"affiliates,omitempty"`
}
