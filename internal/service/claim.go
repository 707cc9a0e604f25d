// internal/service/claim.go
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

// ClaimService owns claim creation and the invoice sub-mutations. Invoice
// changes are not status transitions; they are recorded as field-diff
// audit entries against the claim, through the same atomic
// write-plus-audit discipline as transitions.
type ClaimService struct {
	uow      repository.UnitOfWork
	validate *validator.Validate
	now      func() time.Time
}

// ClaimOption configures optional service collaborators.
type ClaimOption func(*ClaimService)

// WithClaimClock overrides the time source used for audit timestamps.
func WithClaimClock(now func() time.Time) ClaimOption {
	return func(s *ClaimService) {
		s.now = now
	}
}

func NewClaimService(uow repository.UnitOfWork, opts ...ClaimOption) *ClaimService {
	s := &ClaimService{
		uow:      uow,
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateClaimInput struct {
	PolicyID    uuid.UUID `json:"policy_id" validate:"required"`
	AffiliateID uuid.UUID `json:"affiliate_id" validate:"required"`
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	Description string    `json:"description"`
}

// CreateClaim submits a new claim. The patient must be reachable from the
// claim's policy through the policy-affiliate join, and a row-scoped actor
// may only file for its own affiliate or a dependent of it.
func (s *ClaimService) CreateClaim(ctx context.Context, actor *model.Principal, input CreateClaimInput) (*model.Claim, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var claim *model.Claim

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		policy, err := r.Policies.FindByID(ctx, input.PolicyID)
		if err != nil {
			return err
		}

		actorScope := scope.Resolve(actor)
		if !actorScope.Contains(policy.ClientID) {
			return domain.ErrUnauthorized
		}

		patient, err := r.Affiliates.FindByID(ctx, input.PatientID)
		if err != nil {
			return err
		}
		if !actorScope.CoversAffiliate(patient) {
			return domain.ErrUnauthorized
		}

		covered, err := r.Policies.CoversAffiliate(ctx, policy.ID, patient.ID)
		if err != nil {
			return err
		}
		if !covered {
			return domain.ErrPatientNotOnPolicy
		}

		claim = &model.Claim{
			Status:      model.ClaimSubmitted,
			PolicyID:    input.PolicyID,
			AffiliateID: input.AffiliateID,
			PatientID:   input.PatientID,
			Description: input.Description,
		}
		if err := r.Claims.Create(ctx, claim); err != nil {
			return err
		}

		return r.AuditLogs.Create(ctx, &model.AuditLogEntry{
			EntityType: model.AuditEntityClaim,
			EntityID:   claim.ID,
			ActorID:    actor.ID,
			ToStatus:   string(model.ClaimSubmitted),
			Timestamp:  s.now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return claim, nil
}

type AddInvoiceInput struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// AddInvoice attaches a billed line item to a claim and records it as a
// field-diff audit entry in the same transaction.
func (s *ClaimService) AddInvoice(ctx context.Context, actor *model.Principal, claimID uuid.UUID, input AddInvoiceInput) (*model.ClaimInvoice, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var invoice *model.ClaimInvoice

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		claim, err := s.authorizeClaim(ctx, r, actor, claimID)
		if err != nil {
			return err
		}

		currency := input.Currency
		if currency == "" {
			currency = "USD"
		}

		invoice = &model.ClaimInvoice{
			ClaimID:     claim.ID,
			AmountCents: input.AmountCents,
			Currency:    currency,
			Description: input.Description,
		}
		if err := r.Claims.AddInvoice(ctx, invoice); err != nil {
			return err
		}

		return r.AuditLogs.Create(ctx, &model.AuditLogEntry{
			EntityType: model.AuditEntityClaim,
			EntityID:   claim.ID,
			ActorID:    actor.ID,
			FromStatus: string(claim.Status),
			ToStatus:   string(claim.Status),
			Diff: model.JSONMap{
				"invoice_added": invoice.ID.String(),
				"amount_cents":  input.AmountCents,
			},
			Timestamp: s.now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

// RemoveInvoice detaches a line item from a claim, recorded the same way
// additions are.
func (s *ClaimService) RemoveInvoice(ctx context.Context, actor *model.Principal, claimID, invoiceID uuid.UUID) error {
	return s.uow.Do(ctx, func(r *repository.Repositories) error {
		claim, err := s.authorizeClaim(ctx, r, actor, claimID)
		if err != nil {
			return err
		}

		invoice, err := r.Claims.FindInvoice(ctx, invoiceID)
		if err != nil {
			return err
		}
		if invoice.ClaimID != claim.ID {
			return domain.ErrClaimInvoiceNotFound
		}

		if err := r.Claims.DeleteInvoice(ctx, invoice.ID); err != nil {
			return err
		}

		return r.AuditLogs.Create(ctx, &model.AuditLogEntry{
			EntityType: model.AuditEntityClaim,
			EntityID:   claim.ID,
			ActorID:    actor.ID,
			FromStatus: string(claim.Status),
			ToStatus:   string(claim.Status),
			Diff: model.JSONMap{
				"invoice_removed": invoice.ID.String(),
				"amount_cents":    invoice.AmountCents,
			},
			Timestamp: s.now().UTC(),
		})
	})
}

func (s *ClaimService) authorizeClaim(ctx context.Context, r *repository.Repositories, actor *model.Principal, claimID uuid.UUID) (*model.Claim, error) {
	claim, err := r.Claims.FindByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	policy, err := r.Policies.FindByID(ctx, claim.PolicyID)
	if err != nil {
		return nil, err
	}
	if !scope.HasAccess(actor, policy.ClientID) {
		return nil, domain.ErrUnauthorized
	}
	return claim, nil
}
