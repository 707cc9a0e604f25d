// internal/model/ticket.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketOpen            TicketStatus = "open"
	TicketInProgress      TicketStatus = "in_progress"
	TicketWaitingOnClient TicketStatus = "waiting_on_client"
	TicketResolved        TicketStatus = "resolved"
	TicketClosed          TicketStatus = "closed"
)

// Ticket is a support request raised for a client.
type Ticket struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClientID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"client_id"`
	Status    TicketStatus `gorm:"type:text;not null;default:'open'" json:"status"`
	Subject   string       `gorm:"type:text;not null" json:"subject"`
	OpenedBy  uuid.UUID    `gorm:"type:uuid;not null" json:"opened_by"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Messages []TicketMessage `gorm:"foreignKey:TicketID" json:"messages,omitempty"`
}

// TicketMessage is one entry in a ticket's ordered conversation.
type TicketMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TicketID  uuid.UUID `gorm:"type:uuid;not null;index" json:"ticket_id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
