// internal/repository/audit_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/covergrid/brokercore/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.AuditLogEntry) error
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]model.AuditLogEntry, int64, error)
}

// AuditLogRepository is append-only: it exposes no update or delete.
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *model.AuditLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to create audit log entry: %w", result.Error)
	}
	return nil
}

// ListByEntity returns one page of an entity's audit trail, newest first,
// plus the total count for pagination metadata. The id tiebreak keeps the
// order stable for entries committed in the same instant.
func (r *AuditLogRepository) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]model.AuditLogEntry, int64, error) {
	var entries []model.AuditLogEntry
	var count int64

	query := r.db.WithContext(ctx).
		Model(&model.AuditLogEntry{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit log entries: %w", err)
	}

	if limit <= 0 {
		limit = 100
	}

	result := query.
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query audit log entries: %w", result.Error)
	}

	return entries, count, nil
}
