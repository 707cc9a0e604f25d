package handler

import (
	"net/http"
	"strconv"

	"github.com/covergrid/brokercore/internal/middleware"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AuditLogHandler handles API requests for entity audit trails
type AuditLogHandler struct {
	auditLogService *service.AuditLogService
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(auditLogService *service.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogService: auditLogService,
	}
}

var auditEntityTypes = map[string]struct{}{
	model.AuditEntityInvitation: {},
	model.AuditEntityClaim:      {},
	model.AuditEntityTicket:     {},
}

// ListByEntity handles GET /audit/{entityType}/{entityID}
func (h *AuditLogHandler) ListByEntity(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	entityType := chi.URLParam(r, "entityType")
	if _, ok := auditEntityTypes[entityType]; !ok {
		respondWithError(w, http.StatusBadRequest, "Unknown entity type")
		return
	}

	entityID, err := uuid.Parse(chi.URLParam(r, "entityID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid entity ID")
		return
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if v, err := strconv.Atoi(pageStr); err == nil && v > 0 {
			page = v
		}
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
			limit = v
		}
	}

	result, err := h.auditLogService.List(r.Context(), entityType, entityID, page, limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
