// internal/service/ticket.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/repository"
	"github.com/covergrid/brokercore/internal/scope"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TicketService owns ticket creation and the ordered message thread.
type TicketService struct {
	uow      repository.UnitOfWork
	validate *validator.Validate
	now      func() time.Time
}

// TicketOption configures optional service collaborators.
type TicketOption func(*TicketService)

// WithTicketClock overrides the time source used for audit timestamps.
func WithTicketClock(now func() time.Time) TicketOption {
	return func(s *TicketService) {
		s.now = now
	}
}

func NewTicketService(uow repository.UnitOfWork, opts ...TicketOption) *TicketService {
	s := &TicketService{
		uow:      uow,
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type OpenTicketInput struct {
	ClientID uuid.UUID `json:"client_id" validate:"required"`
	Subject  string    `json:"subject" validate:"required"`
	Body     string    `json:"body"`
}

// OpenTicket creates a ticket in the open status, optionally seeding the
// thread with a first message.
func (s *TicketService) OpenTicket(ctx context.Context, actor *model.Principal, input OpenTicketInput) (*model.Ticket, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if !scope.HasAccess(actor, input.ClientID) {
		return nil, domain.ErrUnauthorized
	}

	var ticket *model.Ticket

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		ticket = &model.Ticket{
			ClientID: input.ClientID,
			Status:   model.TicketOpen,
			Subject:  input.Subject,
			OpenedBy: actor.ID,
		}
		if err := r.Tickets.Create(ctx, ticket); err != nil {
			return err
		}

		if input.Body != "" {
			message := &model.TicketMessage{
				TicketID: ticket.ID,
				AuthorID: actor.ID,
				Body:     input.Body,
			}
			if err := r.Tickets.AddMessage(ctx, message); err != nil {
				return err
			}
		}

		return r.AuditLogs.Create(ctx, &model.AuditLogEntry{
			EntityType: model.AuditEntityTicket,
			EntityID:   ticket.ID,
			ActorID:    actor.ID,
			ToStatus:   string(model.TicketOpen),
			Timestamp:  s.now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

// AddMessage appends to the ticket's conversation. Closed tickets accept
// no further messages.
func (s *TicketService) AddMessage(ctx context.Context, actor *model.Principal, ticketID uuid.UUID, body string) (*model.TicketMessage, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: message body is required", domain.ErrInvalidInput)
	}

	var message *model.TicketMessage

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		ticket, err := r.Tickets.FindByID(ctx, ticketID)
		if err != nil {
			return err
		}
		if !scope.HasAccess(actor, ticket.ClientID) {
			return domain.ErrUnauthorized
		}
		if ticket.Status == model.TicketClosed {
			return domain.ErrInvalidTransition
		}

		message = &model.TicketMessage{
			TicketID: ticket.ID,
			AuthorID: actor.ID,
			Body:     body,
		}
		return r.Tickets.AddMessage(ctx, message)
	})
	if err != nil {
		return nil, err
	}

	return message, nil
}
