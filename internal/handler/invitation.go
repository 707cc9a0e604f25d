package handler

import (
	"encoding/json"
	"net/http"

	"github.com/covergrid/brokercore/internal/middleware"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// InvitationHandler handles API requests for the invitation lifecycle
type InvitationHandler struct {
	invitationService *service.InvitationService
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// Issue handles POST /invitations
func (h *InvitationHandler) Issue(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input service.IssueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	invitation, err := h.invitationService.Issue(r.Context(), actor, input)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, invitation)
}

// Validate handles GET /invitations/validate/{token}. Unauthenticated: the
// token itself is the credential, and an invalid one reports a reason
// rather than an error.
func (h *InvitationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		respondWithError(w, http.StatusBadRequest, "Missing invitation token")
		return
	}

	result, err := h.invitationService.Validate(r.Context(), token)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Accept handles POST /invitations/accept/{token}
func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		respondWithError(w, http.StatusBadRequest, "Missing invitation token")
		return
	}

	var input service.AcceptInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	output, err := h.invitationService.Accept(r.Context(), token, input)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}

// Resend handles POST /invitations/{id}/resend
func (h *InvitationHandler) Resend(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invitation ID")
		return
	}

	invitation, err := h.invitationService.Resend(r.Context(), actor, id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, invitation)
}

// Revoke handles POST /invitations/{id}/revoke
func (h *InvitationHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invitation ID")
		return
	}

	invitation, err := h.invitationService.Revoke(r.Context(), actor, id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, invitation)
}

type bulkInviteRequest struct {
	AffiliateIDs []uuid.UUID `json:"affiliate_ids"`
	Role         model.Role  `json:"role"`
}

// BulkInvite handles POST /invitations/bulk. The response is always 200
// with per-item outcomes; a rejected item is not a failed request.
func (h *InvitationHandler) BulkInvite(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req bulkInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if len(req.AffiliateIDs) == 0 {
		respondWithError(w, http.StatusBadRequest, "No affiliates given")
		return
	}

	result, err := h.invitationService.BulkInvite(r.Context(), actor, req.AffiliateIDs, req.Role)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
