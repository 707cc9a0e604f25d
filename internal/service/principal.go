// internal/service/principal.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/covergrid/brokercore/internal/auth"
	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/repository"
	"github.com/covergrid/brokercore/internal/scope"
	"github.com/google/uuid"
)

// PrincipalService covers login and the administrative mutations on
// principals: wholesale grant replacement and deactivation. Principals are
// never deleted.
type PrincipalService struct {
	principals   repository.PrincipalRepositoryIface
	grants       repository.ClientGrantRepositoryIface
	hasher       *auth.PasswordHasher
	tokenManager *auth.TokenManager
}

func NewPrincipalService(
	principals repository.PrincipalRepositoryIface,
	grants repository.ClientGrantRepositoryIface,
	hasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *PrincipalService {
	return &PrincipalService{
		principals:   principals,
		grants:       grants,
		hasher:       hasher,
		tokenManager: tokenManager,
	}
}

type LoginOutput struct {
	Principal *model.Principal `json:"principal"`
	Token     string           `json:"token"`
}

// Authenticate verifies credentials and returns a session token.
func (s *PrincipalService) Authenticate(ctx context.Context, email, password string) (*LoginOutput, error) {
	principal, err := s.principals.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !principal.Active {
		return nil, domain.ErrPrincipalInactive
	}

	verified, err := s.hasher.Verify(password, principal.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(principal.ID.String(), principal.Email, string(principal.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{Principal: principal, Token: token}, nil
}

// ReplaceGrants swaps a scoped principal's client access list wholesale.
// Only a privileged actor may do this, and it is meaningless for
// global-scope roles.
func (s *PrincipalService) ReplaceGrants(ctx context.Context, actor *model.Principal, principalID uuid.UUID, clientIDs []uuid.UUID) error {
	if !canAdministerPrincipals(actor) {
		return domain.ErrUnauthorized
	}

	target, err := s.principals.FindByID(ctx, principalID)
	if err != nil {
		return err
	}
	if !target.Role.Scoped() {
		return fmt.Errorf("%w: grants apply to scoped roles only", domain.ErrInvalidInput)
	}

	// A scoped actor can only hand out clients inside its own scope.
	for _, clientID := range clientIDs {
		if !scope.HasAccess(actor, clientID) {
			return domain.ErrUnauthorized
		}
	}

	return s.grants.ReplaceForPrincipal(ctx, principalID, clientIDs)
}

// Deactivate disables a principal's access without deleting it.
func (s *PrincipalService) Deactivate(ctx context.Context, actor *model.Principal, principalID uuid.UUID) error {
	if !canAdministerPrincipals(actor) {
		return domain.ErrUnauthorized
	}

	target, err := s.principals.FindByID(ctx, principalID)
	if err != nil {
		return err
	}
	if !target.Active {
		return nil
	}

	target.Active = false
	return s.principals.Update(ctx, target)
}

func canAdministerPrincipals(actor *model.Principal) bool {
	if actor == nil || !actor.Active {
		return false
	}
	switch actor.Role {
	case model.RoleSuperAdmin, model.RoleAdminEmployee:
		return true
	}
	return false
}
