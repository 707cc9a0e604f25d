package handler

import (
	"encoding/json"
	"net/http"

	"github.com/covergrid/brokercore/internal/middleware"
	"github.com/covergrid/brokercore/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AuthHandler handles login and principal administration
type AuthHandler struct {
	principalService *service.PrincipalService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(principalService *service.PrincipalService) *AuthHandler {
	return &AuthHandler{
		principalService: principalService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	output, err := h.principalService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	respondWithJSON(w, http.StatusOK, actor)
}

type replaceGrantsRequest struct {
	ClientIDs []uuid.UUID `json:"client_ids"`
}

// ReplaceGrants handles PUT /principals/{id}/grants
func (h *AuthHandler) ReplaceGrants(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	principalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid principal ID")
		return
	}

	var req replaceGrantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.principalService.ReplaceGrants(r.Context(), actor, principalID, req.ClientIDs); err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Deactivate handles POST /principals/{id}/deactivate. Accounts are never
// deleted so the audit trail keeps a resolvable actor.
func (h *AuthHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor := middleware.PrincipalFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	principalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid principal ID")
		return
	}

	if err := h.principalService.Deactivate(r.Context(), actor, principalID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
