// internal/service/invitation_bulk.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/scope"
	"github.com/google/uuid"
)

// Typed per-item failure reasons for BulkInvite.
const (
	BulkReasonNotFound          = "not_found"
	BulkReasonMissingEmail      = "missing_email"
	BulkReasonInactive          = "inactive"
	BulkReasonAlreadyRegistered = "already_registered"
	BulkReasonAlreadyInvited    = "already_invited"
	BulkReasonUnauthorized      = "unauthorized"
	BulkReasonInternal          = "internal_error"
)

type BulkInviteItem struct {
	AffiliateID  uuid.UUID  `json:"affiliate_id"`
	Email        string     `json:"email,omitempty"`
	Success      bool       `json:"success"`
	Reason       string     `json:"reason,omitempty"`
	InvitationID *uuid.UUID `json:"invitation_id,omitempty"`
}

type BulkInviteResult struct {
	Total        int              `json:"total"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	Results      []BulkInviteItem `json:"results"`
}

// BulkInvite issues invitations for a batch of affiliates. Items are
// processed independently, in input order, each in its own unit of work:
// partial failure is an expected outcome, reported per item, never an
// error for the batch as a whole.
func (s *InvitationService) BulkInvite(ctx context.Context, actor *model.Principal, affiliateIDs []uuid.UUID, role model.Role) (*BulkInviteResult, error) {
	if !scope.RoleMatchesType(model.InviteAffiliate, role) {
		return nil, domain.ErrInvalidRole
	}

	result := &BulkInviteResult{
		Total:   len(affiliateIDs),
		Results: make([]BulkInviteItem, 0, len(affiliateIDs)),
	}

	for _, affiliateID := range affiliateIDs {
		item := s.bulkInviteOne(ctx, actor, affiliateID, role)
		if item.Success {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
		result.Results = append(result.Results, item)
	}

	return result, nil
}

func (s *InvitationService) bulkInviteOne(ctx context.Context, actor *model.Principal, affiliateID uuid.UUID, role model.Role) BulkInviteItem {
	item := BulkInviteItem{AffiliateID: affiliateID}

	affiliate, err := s.affiliates.FindByID(ctx, affiliateID)
	if err != nil {
		if errors.Is(err, domain.ErrAffiliateNotFound) {
			item.Reason = BulkReasonNotFound
		} else {
			item.Reason = s.bulkInternalFailure(ctx, affiliateID, err)
		}
		return item
	}
	item.Email = affiliate.Email

	switch {
	case affiliate.Email == "":
		item.Reason = BulkReasonMissingEmail
		return item
	case !affiliate.Active:
		item.Reason = BulkReasonInactive
		return item
	case affiliate.UserID != nil:
		item.Reason = BulkReasonAlreadyRegistered
		return item
	}

	clientID := affiliate.ClientID
	if !scope.CanInvite(actor, model.InviteAffiliate, role, &clientID) {
		item.Reason = BulkReasonUnauthorized
		return item
	}

	// An existing user account or pending invitation keeps the affiliate
	// ineligible.
	existing, err := s.principals.FindByEmail(ctx, affiliate.Email)
	if err != nil && !errors.Is(err, domain.ErrPrincipalNotFound) {
		item.Reason = s.bulkInternalFailure(ctx, affiliateID, err)
		return item
	}
	if existing != nil {
		item.Reason = BulkReasonAlreadyRegistered
		return item
	}

	pending, err := s.invitations.FindPendingByEmailAndType(ctx, affiliate.Email, model.InviteAffiliate)
	if err != nil && !errors.Is(err, domain.ErrInvitationNotFound) {
		item.Reason = s.bulkInternalFailure(ctx, affiliateID, err)
		return item
	}
	if pending != nil {
		item.Reason = BulkReasonAlreadyInvited
		return item
	}

	invitation := &model.Invitation{
		Token:       generateInviteToken(),
		Email:       affiliate.Email,
		Type:        model.InviteAffiliate,
		Role:        role,
		Status:      model.InvitationPending,
		FirstName:   affiliate.FirstName,
		LastName:    affiliate.LastName,
		ClientID:    &clientID,
		AffiliateID: &affiliate.ID,
		ExpiresAt:   s.now().Add(s.config.Invitation.Window),
		CreatedByID: actor.ID,
	}

	if err := s.invitations.Create(ctx, invitation); err != nil {
		item.Reason = s.bulkInternalFailure(ctx, affiliateID, err)
		return item
	}

	s.sendInvitationEmail(ctx, invitation)

	item.Success = true
	item.InvitationID = &invitation.ID
	return item
}

func (s *InvitationService) bulkInternalFailure(ctx context.Context, affiliateID uuid.UUID, err error) string {
	slog.ErrorContext(ctx, "bulk invite item failed",
		"affiliate_id", affiliateID,
		"error", err,
	)
	return BulkReasonInternal
}
