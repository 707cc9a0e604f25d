package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/covergrid/brokercore/internal/auth"
	"github.com/covergrid/brokercore/internal/config"
	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/mocks"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/repository"
	"github.com/covergrid/brokercore/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// uowStub satisfies repository.UnitOfWork by running the function against a
// fixed repository set. Transactionality itself is covered by the
// repository tests; here only the orchestration matters.
type uowStub struct {
	repos *repository.Repositories
}

func (u *uowStub) Do(ctx context.Context, fn func(r *repository.Repositories) error) error {
	return fn(u.repos)
}

type invitationFixture struct {
	invitations *mocks.MockInvitationRepositoryIface
	principals  *mocks.MockPrincipalRepositoryIface
	affiliates  *mocks.MockAffiliateRepositoryIface
	clients     *mocks.MockClientRepositoryIface
	grants      *mocks.MockClientGrantRepositoryIface
	auditLogs   *mocks.MockAuditLogRepositoryIface
	svc         *service.InvitationService
}

func newInvitationFixture(ctrl *gomock.Controller, now time.Time) *invitationFixture {
	f := &invitationFixture{
		invitations: mocks.NewMockInvitationRepositoryIface(ctrl),
		principals:  mocks.NewMockPrincipalRepositoryIface(ctrl),
		affiliates:  mocks.NewMockAffiliateRepositoryIface(ctrl),
		clients:     mocks.NewMockClientRepositoryIface(ctrl),
		grants:      mocks.NewMockClientGrantRepositoryIface(ctrl),
		auditLogs:   mocks.NewMockAuditLogRepositoryIface(ctrl),
	}

	uow := &uowStub{repos: &repository.Repositories{
		Invitations: f.invitations,
		Principals:  f.principals,
		Affiliates:  f.affiliates,
		Grants:      f.grants,
		AuditLogs:   f.auditLogs,
	}}

	cfg := &config.Config{}
	cfg.Invitation.Window = 7 * 24 * time.Hour
	cfg.BaseURL = "http://localhost:8080"

	f.svc = service.NewInvitationService(
		f.invitations,
		f.principals,
		f.affiliates,
		f.clients,
		uow,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
		nil,
		cfg,
		service.WithClock(func() time.Time { return now }),
	)
	return f
}

func TestIssueInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	superAdmin := &model.Principal{ID: uuid.New(), Role: model.RoleSuperAdmin, Active: true}

	t.Run("issues a pending employee invitation", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		f.principals.EXPECT().
			FindByEmail(gomock.Any(), "new@example.com").
			Return(nil, domain.ErrPrincipalNotFound)
		f.invitations.EXPECT().
			FindPendingByEmailAndType(gomock.Any(), "new@example.com", model.InviteEmployee).
			Return(nil, domain.ErrInvitationNotFound)
		f.invitations.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *model.Invitation) error {
				inv.ID = uuid.New()
				return nil
			})

		invitation, err := f.svc.Issue(context.Background(), superAdmin, service.IssueInput{
			Email: "new@example.com",
			Type:  model.InviteEmployee,
			Role:  model.RoleClaimsEmployee,
		})

		require.NoError(t, err)
		assert.Equal(t, model.InvitationPending, invitation.Status)
		assert.Equal(t, superAdmin.ID, invitation.CreatedByID)
		assert.Equal(t, now.Add(7*24*time.Hour), invitation.ExpiresAt)
		assert.NotEmpty(t, invitation.Token)
	})

	t.Run("issues an agent invitation against an existing client", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)
		clientID := uuid.New()

		f.clients.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(&model.Client{ID: clientID, Name: "Acme Logistics"}, nil)
		f.principals.EXPECT().
			FindByEmail(gomock.Any(), "agent@example.com").
			Return(nil, domain.ErrPrincipalNotFound)
		f.invitations.EXPECT().
			FindPendingByEmailAndType(gomock.Any(), "agent@example.com", model.InviteAgent).
			Return(nil, domain.ErrInvitationNotFound)
		f.invitations.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		invitation, err := f.svc.Issue(context.Background(), superAdmin, service.IssueInput{
			Email:    "agent@example.com",
			Type:     model.InviteAgent,
			Role:     model.RoleAgent,
			ClientID: &clientID,
		})

		require.NoError(t, err)
		require.NotNil(t, invitation.ClientID)
		assert.Equal(t, clientID, *invitation.ClientID)
	})

	t.Run("rejects a client-bound invitation for an unknown client", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)
		clientID := uuid.New()

		f.clients.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(nil, domain.ErrNotFound)

		_, err := f.svc.Issue(context.Background(), superAdmin, service.IssueInput{
			Email:    "agent@example.com",
			Type:     model.InviteAgent,
			Role:     model.RoleAgent,
			ClientID: &clientID,
		})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects a second pending invitation for the same email", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		f.principals.EXPECT().
			FindByEmail(gomock.Any(), "dup@example.com").
			Return(nil, domain.ErrPrincipalNotFound)
		f.invitations.EXPECT().
			FindPendingByEmailAndType(gomock.Any(), "dup@example.com", model.InviteEmployee).
			Return(&model.Invitation{ID: uuid.New(), Status: model.InvitationPending}, nil)

		_, err := f.svc.Issue(context.Background(), superAdmin, service.IssueInput{
			Email: "dup@example.com",
			Type:  model.InviteEmployee,
			Role:  model.RoleAdminEmployee,
		})

		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("rejects an email with an active account", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		f.principals.EXPECT().
			FindByEmail(gomock.Any(), "taken@example.com").
			Return(&model.Principal{ID: uuid.New(), Active: true}, nil)

		_, err := f.svc.Issue(context.Background(), superAdmin, service.IssueInput{
			Email: "taken@example.com",
			Type:  model.InviteEmployee,
			Role:  model.RoleAdminEmployee,
		})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("rejects a role outside the invitation type", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		_, err := f.svc.Issue(context.Background(), superAdmin, service.IssueInput{
			Email: "x@example.com",
			Type:  model.InviteEmployee,
			Role:  model.RoleAffiliate,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("rejects an unauthorized inviter", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)
		claimsEmployee := &model.Principal{ID: uuid.New(), Role: model.RoleClaimsEmployee, Active: true}

		_, err := f.svc.Issue(context.Background(), claimsEmployee, service.IssueInput{
			Email: "x@example.com",
			Type:  model.InviteEmployee,
			Role:  model.RoleAdminEmployee,
		})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		_, err := f.svc.Issue(context.Background(), superAdmin, service.IssueInput{
			Email: "not-an-email",
			Type:  model.InviteEmployee,
			Role:  model.RoleAdminEmployee,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestValidateInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending within window is valid", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		f.invitations.EXPECT().
			FindByToken(gomock.Any(), "tok").
			Return(&model.Invitation{
				Email:     "a@example.com",
				Type:      model.InviteAgent,
				Status:    model.InvitationPending,
				ExpiresAt: now.Add(time.Hour),
			}, nil)

		result, err := f.svc.Validate(context.Background(), "tok")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Reason)
		assert.Equal(t, "a@example.com", result.Email)
	})

	t.Run("pending past expiry reports expired without writing", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		// No Update or UpdateStatusIf expectation: validation stays
		// read-only even for lapsed invitations.
		f.invitations.EXPECT().
			FindByToken(gomock.Any(), "tok").
			Return(&model.Invitation{
				Status:    model.InvitationPending,
				ExpiresAt: now.Add(-time.Minute),
			}, nil)

		result, err := f.svc.Validate(context.Background(), "tok")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "expired", result.Reason)
	})

	t.Run("revoked reports its status", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		f.invitations.EXPECT().
			FindByToken(gomock.Any(), "tok").
			Return(&model.Invitation{Status: model.InvitationRevoked, ExpiresAt: now.Add(time.Hour)}, nil)

		result, err := f.svc.Validate(context.Background(), "tok")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "revoked", result.Reason)
	})

	t.Run("unknown token reports not_found", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		f.invitations.EXPECT().
			FindByToken(gomock.Any(), "missing").
			Return(nil, domain.ErrInvitationNotFound)

		result, err := f.svc.Validate(context.Background(), "missing")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "not_found", result.Reason)
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("accepts an affiliate invitation and links the affiliate", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		invitationID := uuid.New()
		affiliateID := uuid.New()
		clientID := uuid.New()
		invitation := &model.Invitation{
			ID:          invitationID,
			Token:       "tok",
			Email:       "member@example.com",
			Type:        model.InviteAffiliate,
			Role:        model.RoleAffiliate,
			Status:      model.InvitationPending,
			FirstName:   "Dana",
			ClientID:    &clientID,
			AffiliateID: &affiliateID,
			ExpiresAt:   now.Add(time.Hour),
		}

		gomock.InOrder(
			f.invitations.EXPECT().
				FindByToken(gomock.Any(), "tok").
				Return(invitation, nil),

			f.invitations.EXPECT().
				UpdateStatusIf(gomock.Any(), invitationID, model.InvitationPending, model.InvitationAccepted).
				Return(nil),

			f.principals.EXPECT().
				FindByEmail(gomock.Any(), "member@example.com").
				Return(nil, domain.ErrPrincipalNotFound),

			f.principals.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *model.Principal) error {
					p.ID = uuid.New()
					return nil
				}),

			f.affiliates.EXPECT().
				FindByID(gomock.Any(), affiliateID).
				Return(&model.Affiliate{ID: affiliateID, ClientID: clientID}, nil),

			f.affiliates.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, a *model.Affiliate) error {
					assert.NotNil(t, a.UserID)
					return nil
				}),

			f.invitations.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				Return(nil),

			f.auditLogs.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *model.AuditLogEntry) error {
					assert.Equal(t, model.AuditEntityInvitation, entry.EntityType)
					assert.Equal(t, string(model.InvitationPending), entry.FromStatus)
					assert.Equal(t, string(model.InvitationAccepted), entry.ToStatus)
					return nil
				}),
		)

		output, err := f.svc.Accept(context.Background(), "tok", service.AcceptInput{
			Password: "str0ngpassword",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, "member@example.com", output.Principal.Email)
		assert.Equal(t, model.RoleAffiliate, output.Principal.Role)
		assert.True(t, output.Principal.Active)
		// Invitation fields win when the input omits names.
		assert.Equal(t, "Dana", output.Principal.FirstName)
	})

	t.Run("client admin acceptance creates a grant", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		invitationID := uuid.New()
		clientID := uuid.New()
		invitation := &model.Invitation{
			ID:        invitationID,
			Token:     "tok",
			Email:     "admin@example.com",
			Type:      model.InviteAffiliate,
			Role:      model.RoleClientAdmin,
			Status:    model.InvitationPending,
			ClientID:  &clientID,
			ExpiresAt: now.Add(time.Hour),
		}

		f.invitations.EXPECT().FindByToken(gomock.Any(), "tok").Return(invitation, nil)
		f.invitations.EXPECT().
			UpdateStatusIf(gomock.Any(), invitationID, model.InvitationPending, model.InvitationAccepted).
			Return(nil)
		f.principals.EXPECT().
			FindByEmail(gomock.Any(), "admin@example.com").
			Return(nil, domain.ErrPrincipalNotFound)
		f.principals.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *model.Principal) error {
				p.ID = uuid.New()
				return nil
			})
		f.grants.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *model.ClientGrant) error {
				assert.Equal(t, clientID, g.ClientID)
				return nil
			})
		f.invitations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		f.auditLogs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		output, err := f.svc.Accept(context.Background(), "tok", service.AcceptInput{
			Password: "str0ngpassword",
		})

		require.NoError(t, err)
		assert.Equal(t, model.RoleClientAdmin, output.Principal.Role)
	})

	t.Run("already accepted reports conflict", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		f.invitations.EXPECT().
			FindByToken(gomock.Any(), "tok").
			Return(&model.Invitation{Status: model.InvitationAccepted}, nil)

		_, err := f.svc.Accept(context.Background(), "tok", service.AcceptInput{Password: "str0ngpassword"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("revoked reports invalid transition", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		f.invitations.EXPECT().
			FindByToken(gomock.Any(), "tok").
			Return(&model.Invitation{Status: model.InvitationRevoked}, nil)

		_, err := f.svc.Accept(context.Background(), "tok", service.AcceptInput{Password: "str0ngpassword"})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("lapsed pending reports expired and flips the status", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		invitationID := uuid.New()
		f.invitations.EXPECT().
			FindByToken(gomock.Any(), "tok").
			Return(&model.Invitation{
				ID:        invitationID,
				Status:    model.InvitationPending,
				ExpiresAt: now.Add(-time.Minute),
			}, nil)
		f.invitations.EXPECT().
			UpdateStatusIf(gomock.Any(), invitationID, model.InvitationPending, model.InvitationExpired).
			Return(nil)

		_, err := f.svc.Accept(context.Background(), "tok", service.AcceptInput{Password: "str0ngpassword"})
		assert.ErrorIs(t, err, domain.ErrExpired)
	})

	t.Run("losing the status race reports conflict", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		invitationID := uuid.New()
		f.invitations.EXPECT().
			FindByToken(gomock.Any(), "tok").
			Return(&model.Invitation{
				ID:        invitationID,
				Status:    model.InvitationPending,
				ExpiresAt: now.Add(time.Hour),
			}, nil)
		f.invitations.EXPECT().
			UpdateStatusIf(gomock.Any(), invitationID, model.InvitationPending, model.InvitationAccepted).
			Return(domain.ErrConflict)

		_, err := f.svc.Accept(context.Background(), "tok", service.AcceptInput{Password: "str0ngpassword"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("weak password is rejected before any read", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		_, err := f.svc.Accept(context.Background(), "tok", service.AcceptInput{Password: "short"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestResendInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	superAdmin := &model.Principal{ID: uuid.New(), Role: model.RoleSuperAdmin, Active: true}

	t.Run("rotates the token and extends the window", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		invitationID := uuid.New()
		original := &model.Invitation{
			ID:        invitationID,
			Token:     "old-token",
			Email:     "a@example.com",
			Type:      model.InviteEmployee,
			Role:      model.RoleAdminEmployee,
			Status:    model.InvitationPending,
			ExpiresAt: now.Add(time.Hour),
		}

		f.invitations.EXPECT().
			FindByID(gomock.Any(), invitationID).
			Return(original, nil)
		f.invitations.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *model.Invitation) error {
				assert.NotEqual(t, "old-token", inv.Token)
				assert.Equal(t, now.Add(7*24*time.Hour), inv.ExpiresAt)
				return nil
			})
		f.auditLogs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *model.AuditLogEntry) error {
				assert.Equal(t, string(model.InvitationPending), entry.FromStatus)
				assert.Equal(t, string(model.InvitationPending), entry.ToStatus)
				assert.Equal(t, true, entry.Diff["token_rotated"])
				return nil
			})

		invitation, err := f.svc.Resend(context.Background(), superAdmin, invitationID)
		require.NoError(t, err)
		assert.NotEqual(t, "old-token", invitation.Token)
	})

	t.Run("refuses a non-pending invitation", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		invitationID := uuid.New()
		f.invitations.EXPECT().
			FindByID(gomock.Any(), invitationID).
			Return(&model.Invitation{
				ID:     invitationID,
				Type:   model.InviteEmployee,
				Role:   model.RoleAdminEmployee,
				Status: model.InvitationRevoked,
			}, nil)

		_, err := f.svc.Resend(context.Background(), superAdmin, invitationID)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("refuses an actor outside the invitation's client", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		clientID := uuid.New()
		otherAdmin := &model.Principal{
			ID:     uuid.New(),
			Role:   model.RoleClientAdmin,
			Active: true,
			Grants: []model.ClientGrant{{ClientID: uuid.New()}},
		}

		invitationID := uuid.New()
		f.invitations.EXPECT().
			FindByID(gomock.Any(), invitationID).
			Return(&model.Invitation{
				ID:       invitationID,
				Type:     model.InviteAffiliate,
				Role:     model.RoleAffiliate,
				Status:   model.InvitationPending,
				ClientID: &clientID,
			}, nil)

		_, err := f.svc.Resend(context.Background(), otherAdmin, invitationID)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestRevokeInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	superAdmin := &model.Principal{ID: uuid.New(), Role: model.RoleSuperAdmin, Active: true}

	t.Run("revokes a pending invitation", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		invitationID := uuid.New()
		f.invitations.EXPECT().
			FindByID(gomock.Any(), invitationID).
			Return(&model.Invitation{
				ID:     invitationID,
				Type:   model.InviteEmployee,
				Role:   model.RoleAdminEmployee,
				Status: model.InvitationPending,
			}, nil)
		f.invitations.EXPECT().
			UpdateStatusIf(gomock.Any(), invitationID, model.InvitationPending, model.InvitationRevoked).
			Return(nil)
		f.auditLogs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *model.AuditLogEntry) error {
				assert.Equal(t, string(model.InvitationRevoked), entry.ToStatus)
				return nil
			})

		invitation, err := f.svc.Revoke(context.Background(), superAdmin, invitationID)
		require.NoError(t, err)
		assert.Equal(t, model.InvitationRevoked, invitation.Status)
	})

	t.Run("refuses an already accepted invitation", func(t *testing.T) {
		f := newInvitationFixture(ctrl, now)

		invitationID := uuid.New()
		f.invitations.EXPECT().
			FindByID(gomock.Any(), invitationID).
			Return(&model.Invitation{
				ID:     invitationID,
				Type:   model.InviteEmployee,
				Role:   model.RoleAdminEmployee,
				Status: model.InvitationAccepted,
			}, nil)

		_, err := f.svc.Revoke(context.Background(), superAdmin, invitationID)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}
