// internal/service/workflow.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/repository"
	"github.com/covergrid/brokercore/internal/scope"
	"github.com/covergrid/brokercore/internal/workflow"
	"github.com/google/uuid"
)

// WorkflowService applies the per-entity transition graphs to claims and
// tickets. Every transition updates the status through a conditional write
// and appends one audit entry in the same transaction.
type WorkflowService struct {
	uow repository.UnitOfWork
	now func() time.Time
}

// WorkflowOption configures optional service collaborators.
type WorkflowOption func(*WorkflowService)

// WithWorkflowClock overrides the time source used for audit timestamps.
func WithWorkflowClock(now func() time.Time) WorkflowOption {
	return func(s *WorkflowService) {
		s.now = now
	}
}

func NewWorkflowService(uow repository.UnitOfWork, opts ...WorkflowOption) *WorkflowService {
	s := &WorkflowService{
		uow: uow,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transition dispatches a status change to the entity's graph. Supported
// entity types are "claim" and "ticket".
func (s *WorkflowService) Transition(ctx context.Context, actor *model.Principal, entityType string, entityID uuid.UUID, toStatus string) error {
	switch entityType {
	case model.AuditEntityClaim:
		_, err := s.TransitionClaim(ctx, actor, entityID, model.ClaimStatus(toStatus))
		return err
	case model.AuditEntityTicket:
		_, err := s.TransitionTicket(ctx, actor, entityID, model.TicketStatus(toStatus))
		return err
	default:
		return fmt.Errorf("%w: unknown entity type %q", domain.ErrInvalidInput, entityType)
	}
}

// TransitionClaim moves a claim along the claim graph. The scope check runs
// before any write; an illegal edge fails with domain.ErrInvalidTransition
// and a lost conditional write with domain.ErrConflict.
func (s *WorkflowService) TransitionClaim(ctx context.Context, actor *model.Principal, claimID uuid.UUID, toStatus model.ClaimStatus) (*model.Claim, error) {
	var claim *model.Claim

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		var err error
		claim, err = r.Claims.FindByID(ctx, claimID)
		if err != nil {
			return err
		}

		policy, err := r.Policies.FindByID(ctx, claim.PolicyID)
		if err != nil {
			return err
		}
		if !scope.HasAccess(actor, policy.ClientID) {
			return domain.ErrUnauthorized
		}

		fromStatus := claim.Status
		if err := workflow.ClaimGraph.Validate(fromStatus, toStatus); err != nil {
			return err
		}

		if err := r.Claims.UpdateStatusIf(ctx, claim.ID, fromStatus, toStatus); err != nil {
			return err
		}
		claim.Status = toStatus

		return r.AuditLogs.Create(ctx, &model.AuditLogEntry{
			EntityType: model.AuditEntityClaim,
			EntityID:   claim.ID,
			ActorID:    actor.ID,
			FromStatus: string(fromStatus),
			ToStatus:   string(toStatus),
			Timestamp:  s.now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return claim, nil
}

// TransitionTicket moves a ticket along the ticket graph under the same
// atomic-write-plus-audit discipline as claims.
func (s *WorkflowService) TransitionTicket(ctx context.Context, actor *model.Principal, ticketID uuid.UUID, toStatus model.TicketStatus) (*model.Ticket, error) {
	var ticket *model.Ticket

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		var err error
		ticket, err = r.Tickets.FindByID(ctx, ticketID)
		if err != nil {
			return err
		}

		if !scope.HasAccess(actor, ticket.ClientID) {
			return domain.ErrUnauthorized
		}

		fromStatus := ticket.Status
		if err := workflow.TicketGraph.Validate(fromStatus, toStatus); err != nil {
			return err
		}

		if err := r.Tickets.UpdateStatusIf(ctx, ticket.ID, fromStatus, toStatus); err != nil {
			return err
		}
		ticket.Status = toStatus

		return r.AuditLogs.Create(ctx, &model.AuditLogEntry{
			EntityType: model.AuditEntityTicket,
			EntityID:   ticket.ID,
			ActorID:    actor.ID,
			FromStatus: string(fromStatus),
			ToStatus:   string(toStatus),
			Timestamp:  s.now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}
