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

// WorkflowHandler handles API requests for claims and tickets, including
// their status transitions.
type WorkflowHandler struct {
	workflowService *service.WorkflowService
	claimService    *service.ClaimService
	ticketService   *service.TicketService
}

// NewWorkflowHandler creates a new workflow handler
func NewWorkflowHandler(
	workflowService *service.WorkflowService,
	claimService *service.ClaimService,
	ticketService *service.TicketService,
) *WorkflowHandler {
	return &WorkflowHandler{
		workflowService: workflowService,
		claimService:    claimService,
		ticketService:   ticketService,
	}
}

type transitionRequest struct {
	Status string `json:"status"`
}

// CreateClaim handles POST /claims
func (h *WorkflowHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input service.CreateClaimInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	claim, err := h.claimService.CreateClaim(r.Context(), actor, input)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, claim)
}

// TransitionClaim handles POST /claims/{id}/transition
func (h *WorkflowHandler) TransitionClaim(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	claim, err := h.workflowService.TransitionClaim(r.Context(), actor, id, model.ClaimStatus(req.Status))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, claim)
}

// AddInvoice handles POST /claims/{id}/invoices
func (h *WorkflowHandler) AddInvoice(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	claimID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	var input service.AddInvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	invoice, err := h.claimService.AddInvoice(r.Context(), actor, claimID, input)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, invoice)
}

// RemoveInvoice handles DELETE /claims/{id}/invoices/{invoiceID}
func (h *WorkflowHandler) RemoveInvoice(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	claimID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	invoiceID, err := uuid.Parse(chi.URLParam(r, "invoiceID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	if err := h.claimService.RemoveInvoice(r.Context(), actor, claimID, invoiceID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// OpenTicket handles POST /tickets
func (h *WorkflowHandler) OpenTicket(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input service.OpenTicketInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ticket, err := h.ticketService.OpenTicket(r.Context(), actor, input)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ticket)
}

// TransitionTicket handles POST /tickets/{id}/transition
func (h *WorkflowHandler) TransitionTicket(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ticket, err := h.workflowService.TransitionTicket(r.Context(), actor, id, model.TicketStatus(req.Status))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ticket)
}

type ticketMessageRequest struct {
	Body string `json:"body"`
}

// AddTicketMessage handles POST /tickets/{id}/messages
func (h *WorkflowHandler) AddTicketMessage(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	var req ticketMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Body == "" {
		respondWithError(w, http.StatusBadRequest, "Message body is required")
		return
	}

	message, err := h.ticketService.AddMessage(r.Context(), actor, id, req.Body)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, message)
}
