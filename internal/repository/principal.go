// internal/repository/principal.go
package repository

import (
	"context"
	"fmt"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrincipalRepositoryIface interface {
	Create(ctx context.Context, principal *model.Principal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Principal, error)
	FindByEmail(ctx context.Context, email string) (*model.Principal, error)
	Update(ctx context.Context, principal *model.Principal) error
}

type PrincipalRepository struct {
	db *gorm.DB
}

func NewPrincipalRepository(db *gorm.DB) *PrincipalRepository {
	return &PrincipalRepository{db: db}
}

func (r *PrincipalRepository) Create(ctx context.Context, principal *model.Principal) error {
	result := r.db.WithContext(ctx).Create(principal)
	if result.Error != nil {
		return fmt.Errorf("failed to create principal: %w", result.Error)
	}
	return nil
}

// FindByID loads a principal with the grants and affiliate link the scope
// resolver needs.
func (r *PrincipalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Principal, error) {
	var principal model.Principal
	result := r.db.WithContext(ctx).
		Preload("Grants").
		Preload("Affiliate").
		First(&principal, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("failed to find principal: %w", result.Error)
	}
	return &principal, nil
}

func (r *PrincipalRepository) FindByEmail(ctx context.Context, email string) (*model.Principal, error) {
	var principal model.Principal
	result := r.db.WithContext(ctx).
		Preload("Grants").
		Preload("Affiliate").
		Where("email = ?", email).
		First(&principal)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("failed to find principal: %w", result.Error)
	}
	return &principal, nil
}

func (r *PrincipalRepository) Update(ctx context.Context, principal *model.Principal) error {
	result := r.db.WithContext(ctx).Save(principal)
	if result.Error != nil {
		return fmt.Errorf("failed to update principal: %w", result.Error)
	}
	return nil
}
