// internal/repository/invitation.go
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

type InvitationRepositoryIface interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
	FindByToken(ctx context.Context, token string) (*model.Invitation, error)
	FindPendingByEmailAndType(ctx context.Context, email string, t model.InvitationType) (*model.Invitation, error)
	Update(ctx context.Context, invitation *model.Invitation) error
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to model.InvitationStatus) error
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	result := r.db.WithContext(ctx).Create(invitation)
	if result.Error != nil {
		return fmt.Errorf("failed to create invitation: %w", result.Error)
	}
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	var invitation model.Invitation
	result := r.db.WithContext(ctx).First(&invitation, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to find invitation: %w", result.Error)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var invitation model.Invitation
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&invitation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to find invitation: %w", result.Error)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindPendingByEmailAndType(ctx context.Context, email string, t model.InvitationType) (*model.Invitation, error) {
	var invitation model.Invitation
	result := r.db.WithContext(ctx).
		Where("email = ? AND type = ? AND status = ?", email, t, model.InvitationPending).
		First(&invitation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to find invitation: %w", result.Error)
	}
	return &invitation, nil
}

func (r *InvitationRepository) Update(ctx context.Context, invitation *model.Invitation) error {
	result := r.db.WithContext(ctx).Save(invitation)
	if result.Error != nil {
		return fmt.Errorf("failed to update invitation: %w", result.Error)
	}
	return nil
}

// UpdateStatusIf performs the compare-and-set status flip. The write is
// conditioned on the stored status still matching from; zero affected rows
// means another request won the race and surfaces as domain.ErrConflict.
func (r *InvitationRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to model.InvitationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Invitation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return fmt.Errorf("failed to update invitation status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}
