// internal/repository/claim.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClaimRepositoryIface interface {
	Create(ctx context.Context, claim *model.Claim) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Claim, error)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to model.ClaimStatus) error
	AddInvoice(ctx context.Context, invoice *model.ClaimInvoice) error
	FindInvoice(ctx context.Context, id uuid.UUID) (*model.ClaimInvoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

type ClaimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) Create(ctx context.Context, claim *model.Claim) error {
	result := r.db.WithContext(ctx).Create(claim)
	if result.Error != nil {
		return fmt.Errorf("failed to create claim: %w", result.Error)
	}
	return nil
}

func (r *ClaimRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Claim, error) {
	var claim model.Claim
	result := r.db.WithContext(ctx).Preload("Invoices").First(&claim, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to find claim: %w", result.Error)
	}
	return &claim, nil
}

// UpdateStatusIf is the conditional status write backing workflow
// transitions; zero affected rows surfaces as domain.ErrConflict.
func (r *ClaimRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to model.ClaimStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Claim{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return fmt.Errorf("failed to update claim status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *ClaimRepository) AddInvoice(ctx context.Context, invoice *model.ClaimInvoice) error {
	result := r.db.WithContext(ctx).Create(invoice)
	if result.Error != nil {
		return fmt.Errorf("failed to create claim invoice: %w", result.Error)
	}
	return nil
}

func (r *ClaimRepository) FindInvoice(ctx context.Context, id uuid.UUID) (*model.ClaimInvoice, error) {
	var invoice model.ClaimInvoice
	result := r.db.WithContext(ctx).First(&invoice, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to find claim invoice: %w", result.Error)
	}
	return &invoice, nil
}

func (r *ClaimRepository) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ClaimInvoice{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete claim invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrClaimInvoiceNotFound
	}
	return nil
}
