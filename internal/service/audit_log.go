// internal/service/audit_log.go
package service

import (
	"context"

	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/repository"
	"github.com/google/uuid"
)

// AuditLogService exposes the read side of the audit trail. There is no
// write surface here: entries are appended by the invitation and workflow
// services inside their own transactions.
type AuditLogService struct {
	repo repository.AuditLogRepositoryIface
}

func NewAuditLogService(repo repository.AuditLogRepositoryIface) *AuditLogService {
	return &AuditLogService{repo: repo}
}

// AuditPage is one page of an entity's audit trail, newest first.
type AuditPage struct {
	Entries []model.AuditLogEntry `json:"entries"`
	Total   int64                 `json:"total"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
}

// List returns the given page of an entity's audit trail. Pages are
// 1-based; limit defaults to 50 and caps at 200.
func (s *AuditLogService) List(ctx context.Context, entityType string, entityID uuid.UUID, page, limit int) (*AuditPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	offset := (page - 1) * limit
	entries, total, err := s.repo.ListByEntity(ctx, entityType, entityID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &AuditPage{
		Entries: entries,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}
