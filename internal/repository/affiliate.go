// internal/repository/affiliate.go
package repository

import (
	"context"
	"fmt"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AffiliateRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Affiliate, error)
	Update(ctx context.Context, affiliate *model.Affiliate) error
}

type AffiliateRepository struct {
	db *gorm.DB
}

func NewAffiliateRepository(db *gorm.DB) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

func (r *AffiliateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Affiliate, error) {
	var affiliate model.Affiliate
	result := r.db.WithContext(ctx).First(&affiliate, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrAffiliateNotFound
		}
		return nil, fmt.Errorf("failed to find affiliate: %w", result.Error)
	}
	return &affiliate, nil
}

func (r *AffiliateRepository) Update(ctx context.Context, affiliate *model.Affiliate) error {
	result := r.db.WithContext(ctx).Save(affiliate)
	if result.Error != nil {
		return fmt.Errorf("failed to update affiliate: %w", result.Error)
	}
	return nil
}
