// internal/repository/policy.go
package repository

import (
	"context"
	"fmt"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PolicyRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Policy, error)
	CoversAffiliate(ctx context.Context, policyID, affiliateID uuid.UUID) (bool, error)
}

type PolicyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

func (r *PolicyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Policy, error) {
	var policy model.Policy
	result := r.db.WithContext(ctx).First(&policy, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to find policy: %w", result.Error)
	}
	return &policy, nil
}

// CoversAffiliate reports whether the affiliate is a member of the policy
// through the policy-affiliate join.
func (r *PolicyRepository) CoversAffiliate(ctx context.Context, policyID, affiliateID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PolicyAffiliate{}).
		Where("policy_id = ? AND affiliate_id = ?", policyID, affiliateID).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check policy membership: %w", result.Error)
	}
	return count > 0, nil
}
