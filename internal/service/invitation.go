// internal/service/invitation.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/covergrid/brokercore/internal/auth"
	"github.com/covergrid/brokercore/internal/config"
	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/email"
	"github.com/covergrid/brokercore/internal/email/mailer"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/repository"
	"github.com/covergrid/brokercore/internal/scope"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InvitationService drives the invitation lifecycle: issuance, validation,
// acceptance, resend, revocation and the bulk affiliate flow. Acceptance
// and revocation flip status through a compare-and-set so concurrent
// requests cannot double-process one invitation.
type InvitationService struct {
	invitations  repository.InvitationRepositoryIface
	principals   repository.PrincipalRepositoryIface
	affiliates   repository.AffiliateRepositoryIface
	clients      repository.ClientRepositoryIface
	uow          repository.UnitOfWork
	hasher       *auth.PasswordHasher
	tokenManager *auth.TokenManager
	emailService *email.Service
	config       *config.Config
	validate     *validator.Validate
	now          func() time.Time
}

// InvitationOption configures optional service collaborators.
type InvitationOption func(*InvitationService)

// WithClock overrides the time source used for expiry arithmetic.
func WithClock(now func() time.Time) InvitationOption {
	return func(s *InvitationService) {
		s.now = now
	}
}

func NewInvitationService(
	invitations repository.InvitationRepositoryIface,
	principals repository.PrincipalRepositoryIface,
	affiliates repository.AffiliateRepositoryIface,
	clients repository.ClientRepositoryIface,
	uow repository.UnitOfWork,
	hasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService *email.Service,
	cfg *config.Config,
	opts ...InvitationOption,
) *InvitationService {
	s := &InvitationService{
		invitations:  invitations,
		principals:   principals,
		affiliates:   affiliates,
		clients:      clients,
		uow:          uow,
		hasher:       hasher,
		tokenManager: tokenManager,
		emailService: emailService,
		config:       cfg,
		validate:     validator.New(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type IssueInput struct {
	Email       string               `json:"email" validate:"required,email"`
	Type        model.InvitationType `json:"type" validate:"required"`
	Role        model.Role           `json:"role" validate:"required"`
	FirstName   string               `json:"first_name"`
	LastName    string               `json:"last_name"`
	ClientID    *uuid.UUID           `json:"client_id"`
	AffiliateID *uuid.UUID           `json:"affiliate_id"`
}

// Issue creates a pending invitation after checking that the inviter may
// grant the requested role for the target client. The token is delivered
// out-of-band; delivery failure never fails the issuance.
func (s *InvitationService) Issue(ctx context.Context, inviter *model.Principal, input IssueInput) (*model.Invitation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !scope.RoleMatchesType(input.Type, input.Role) {
		return nil, domain.ErrInvalidRole
	}
	if input.Type == model.InviteAffiliate && input.AffiliateID == nil {
		return nil, fmt.Errorf("%w: affiliate invitation requires an affiliate id", domain.ErrInvalidInput)
	}

	if !scope.CanInvite(inviter, input.Type, input.Role, input.ClientID) {
		return nil, domain.ErrUnauthorized
	}

	if input.ClientID != nil {
		if _, err := s.clients.FindByID(ctx, *input.ClientID); err != nil {
			return nil, err
		}
	}

	// Reject when the email already belongs to an active account.
	existing, err := s.principals.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrPrincipalNotFound) {
		return nil, err
	}
	if existing != nil && existing.Active {
		return nil, domain.ErrEmailAlreadyExists
	}

	// One pending invitation per email and type.
	pending, err := s.invitations.FindPendingByEmailAndType(ctx, input.Email, input.Type)
	if err != nil && !errors.Is(err, domain.ErrInvitationNotFound) {
		return nil, err
	}
	if pending != nil {
		return nil, domain.ErrAlreadyExists
	}

	invitation := &model.Invitation{
		Token:       generateInviteToken(),
		Email:       input.Email,
		Type:        input.Type,
		Role:        input.Role,
		Status:      model.InvitationPending,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		ClientID:    input.ClientID,
		AffiliateID: input.AffiliateID,
		ExpiresAt:   s.now().Add(s.config.Invitation.Window),
		CreatedByID: inviter.ID,
	}

	if err := s.invitations.Create(ctx, invitation); err != nil {
		return nil, fmt.Errorf("creating invitation: %w", err)
	}

	s.sendInvitationEmail(ctx, invitation)

	return invitation, nil
}

// ValidationResult is the unauthenticated view of an invitation token.
type ValidationResult struct {
	Valid     bool                 `json:"valid"`
	Reason    string               `json:"reason,omitempty"`
	Email     string               `json:"email,omitempty"`
	Type      model.InvitationType `json:"type,omitempty"`
	FirstName string               `json:"first_name,omitempty"`
	LastName  string               `json:"last_name,omitempty"`
	ExpiresAt time.Time            `json:"expires_at,omitempty"`
}

// Validate reports whether a token can still be accepted. It is read-only:
// expiry is evaluated against the clock, so a stored pending status past
// its expiresAt reports invalid without being rewritten here.
func (s *InvitationService) Validate(ctx context.Context, token string) (*ValidationResult, error) {
	invitation, err := s.invitations.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvitationNotFound) {
			return &ValidationResult{Valid: false, Reason: "not_found"}, nil
		}
		return nil, err
	}

	result := &ValidationResult{
		Email:     invitation.Email,
		Type:      invitation.Type,
		FirstName: invitation.FirstName,
		LastName:  invitation.LastName,
		ExpiresAt: invitation.ExpiresAt,
	}

	switch invitation.Status {
	case model.InvitationAccepted:
		result.Reason = "accepted"
	case model.InvitationRevoked:
		result.Reason = "revoked"
	case model.InvitationExpired:
		result.Reason = "expired"
	case model.InvitationPending:
		if invitation.ExpiredBy(s.now()) {
			result.Reason = "expired"
		} else {
			result.Valid = true
		}
	}

	return result, nil
}

type AcceptInput struct {
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AcceptOutput struct {
	Principal *model.Principal `json:"principal"`
	Token     string           `json:"token"`
}

// Accept redeems a pending, non-expired invitation: it creates the
// principal, binds it to the target entity and flips the invitation status,
// all in one transaction. The status flip is conditioned on the stored
// status still being pending, so of two racing accepts exactly one
// succeeds and the other observes domain.ErrConflict.
func (s *InvitationService) Accept(ctx context.Context, token string, input AcceptInput) (*AcceptOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var principal *model.Principal

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		invitation, err := r.Invitations.FindByToken(ctx, token)
		if err != nil {
			return err
		}

		switch invitation.Status {
		case model.InvitationAccepted:
			return domain.ErrConflict
		case model.InvitationRevoked, model.InvitationExpired:
			return domain.ErrInvalidTransition
		}

		if invitation.ExpiredBy(s.now()) {
			// Opportunistic expiry write; losing this race is fine, the
			// caller still sees ErrExpired.
			if err := r.Invitations.UpdateStatusIf(ctx, invitation.ID, model.InvitationPending, model.InvitationExpired); err != nil && !errors.Is(err, domain.ErrConflict) {
				return err
			}
			return domain.ErrExpired
		}

		if err := r.Invitations.UpdateStatusIf(ctx, invitation.ID, model.InvitationPending, model.InvitationAccepted); err != nil {
			return err
		}

		existing, err := r.Principals.FindByEmail(ctx, invitation.Email)
		if err != nil && !errors.Is(err, domain.ErrPrincipalNotFound) {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}

		hashed, err := s.hasher.Hash(input.Password)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}

		firstName := input.FirstName
		if firstName == "" {
			firstName = invitation.FirstName
		}
		lastName := input.LastName
		if lastName == "" {
			lastName = invitation.LastName
		}

		principal = &model.Principal{
			Email:        invitation.Email,
			FirstName:    firstName,
			LastName:     lastName,
			Role:         invitation.Role,
			PasswordHash: hashed,
			Active:       true,
			AffiliateID:  invitation.AffiliateID,
		}

		if err := r.Principals.Create(ctx, principal); err != nil {
			return fmt.Errorf("creating principal: %w", err)
		}

		// Bind the principal to its business entity.
		if invitation.Type == model.InviteAffiliate && invitation.AffiliateID != nil {
			affiliate, err := r.Affiliates.FindByID(ctx, *invitation.AffiliateID)
			if err != nil {
				return err
			}
			affiliate.UserID = &principal.ID
			if err := r.Affiliates.Update(ctx, affiliate); err != nil {
				return fmt.Errorf("linking affiliate: %w", err)
			}
		}

		// Client admins receive an explicit grant for the target client;
		// plain affiliates stay row-scoped through their own affiliate.
		if invitation.Role == model.RoleClientAdmin && invitation.ClientID != nil {
			grant := &model.ClientGrant{
				PrincipalID: principal.ID,
				ClientID:    *invitation.ClientID,
			}
			if err := r.Grants.Create(ctx, grant); err != nil {
				return fmt.Errorf("creating client grant: %w", err)
			}
		}

		acceptedAt := s.now()
		invitation.Status = model.InvitationAccepted
		invitation.AcceptedAt = &acceptedAt
		if err := r.Invitations.Update(ctx, invitation); err != nil {
			return err
		}

		return r.AuditLogs.Create(ctx, &model.AuditLogEntry{
			EntityType: model.AuditEntityInvitation,
			EntityID:   invitation.ID,
			ActorID:    principal.ID,
			FromStatus: string(model.InvitationPending),
			ToStatus:   string(model.InvitationAccepted),
			Timestamp:  acceptedAt.UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	jwt, err := s.tokenManager.Generate(principal.ID.String(), principal.Email, string(principal.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AcceptOutput{Principal: principal, Token: jwt}, nil
}

// Resend extends a pending invitation by the configured window and rotates
// its token, invalidating any previously distributed link.
func (s *InvitationService) Resend(ctx context.Context, actor *model.Principal, invitationID uuid.UUID) (*model.Invitation, error) {
	var invitation *model.Invitation

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		var err error
		invitation, err = r.Invitations.FindByID(ctx, invitationID)
		if err != nil {
			return err
		}

		if !scope.CanInvite(actor, invitation.Type, invitation.Role, invitation.ClientID) {
			return domain.ErrUnauthorized
		}
		if invitation.Status != model.InvitationPending {
			return domain.ErrInvalidTransition
		}

		invitation.Token = generateInviteToken()
		invitation.ExpiresAt = s.now().Add(s.config.Invitation.Window)
		if err := r.Invitations.Update(ctx, invitation); err != nil {
			return err
		}

		return r.AuditLogs.Create(ctx, &model.AuditLogEntry{
			EntityType: model.AuditEntityInvitation,
			EntityID:   invitation.ID,
			ActorID:    actor.ID,
			FromStatus: string(model.InvitationPending),
			ToStatus:   string(model.InvitationPending),
			Diff: model.JSONMap{
				"token_rotated": true,
				"expires_at":    invitation.ExpiresAt,
			},
			Timestamp: s.now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.sendInvitationEmail(ctx, invitation)

	return invitation, nil
}

// Revoke irreversibly cancels a pending invitation.
func (s *InvitationService) Revoke(ctx context.Context, actor *model.Principal, invitationID uuid.UUID) (*model.Invitation, error) {
	var invitation *model.Invitation

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		var err error
		invitation, err = r.Invitations.FindByID(ctx, invitationID)
		if err != nil {
			return err
		}

		if !scope.CanInvite(actor, invitation.Type, invitation.Role, invitation.ClientID) {
			return domain.ErrUnauthorized
		}
		if invitation.Status != model.InvitationPending {
			return domain.ErrInvalidTransition
		}

		if err := r.Invitations.UpdateStatusIf(ctx, invitation.ID, model.InvitationPending, model.InvitationRevoked); err != nil {
			return err
		}
		invitation.Status = model.InvitationRevoked

		return r.AuditLogs.Create(ctx, &model.AuditLogEntry{
			EntityType: model.AuditEntityInvitation,
			EntityID:   invitation.ID,
			ActorID:    actor.ID,
			FromStatus: string(model.InvitationPending),
			ToStatus:   string(model.InvitationRevoked),
			Timestamp:  s.now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return invitation, nil
}

func (s *InvitationService) sendInvitationEmail(ctx context.Context, invitation *model.Invitation) {
	if s.emailService == nil {
		return
	}

	inviteLink := fmt.Sprintf("%s/invitations/accept?token=%s", s.config.BaseURL, invitation.Token)
	expiresIn := fmt.Sprintf("%d days", int(s.config.Invitation.Window.Hours())/24)

	if err := mailer.SendInvitationEmail(s.emailService, invitation.Email, invitation.FirstName, inviteLink, expiresIn); err != nil {
		// Delivery is fire-and-forget; the invitation stands regardless.
		slog.WarnContext(ctx, "failed to send invitation email",
			"invitation_id", invitation.ID,
			"error", err,
		)
	}
}

// generateInviteToken mints an opaque 256-bit token, hex encoded.
func generateInviteToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic(err) // This should never happen
	}
	return hex.EncodeToString(bytes)
}
