// internal/repository/client.go
package repository

import (
	"context"
	"fmt"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
}

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var client model.Client
	result := r.db.WithContext(ctx).First(&client, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", result.Error)
	}
	return &client, nil
}

type ClientGrantRepositoryIface interface {
	Create(ctx context.Context, grant *model.ClientGrant) error
	ReplaceForPrincipal(ctx context.Context, principalID uuid.UUID, clientIDs []uuid.UUID) error
}

type ClientGrantRepository struct {
	db *gorm.DB
}

func NewClientGrantRepository(db *gorm.DB) *ClientGrantRepository {
	return &ClientGrantRepository{db: db}
}

func (r *ClientGrantRepository) Create(ctx context.Context, grant *model.ClientGrant) error {
	result := r.db.WithContext(ctx).Create(grant)
	if result.Error != nil {
		return fmt.Errorf("failed to create client grant: %w", result.Error)
	}
	return nil
}

// ReplaceForPrincipal swaps the principal's grant set wholesale. Grants are
// never edited row by row.
func (r *ClientGrantRepository) ReplaceForPrincipal(ctx context.Context, principalID uuid.UUID, clientIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("principal_id = ?", principalID).Delete(&model.ClientGrant{}).Error; err != nil {
			return fmt.Errorf("failed to clear client grants: %w", err)
		}
		for _, clientID := range clientIDs {
			grant := model.ClientGrant{PrincipalID: principalID, ClientID: clientID}
			if err := tx.Create(&grant).Error; err != nil {
				return fmt.Errorf("failed to create client grant: %w", err)
			}
		}
		return nil
	})
}
