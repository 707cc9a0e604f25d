// internal/repository/ticket.go
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

type TicketRepositoryIface interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to model.TicketStatus) error
	AddMessage(ctx context.Context, message *model.TicketMessage) error
}

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	result := r.db.WithContext(ctx).Create(ticket)
	if result.Error != nil {
		return fmt.Errorf("failed to create ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	var ticket model.Ticket
	result := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&ticket, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", result.Error)
	}
	return &ticket, nil
}

// UpdateStatusIf is the conditional status write backing workflow
// transitions; zero affected rows surfaces as domain.ErrConflict.
func (r *TicketRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to model.TicketStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Ticket{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *TicketRepository) AddMessage(ctx context.Context, message *model.TicketMessage) error {
	result := r.db.WithContext(ctx).Create(message)
	if result.Error != nil {
		return fmt.Errorf("failed to create ticket message: %w", result.Error)
	}
	return nil
}
