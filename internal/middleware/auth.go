// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/covergrid/brokercore/internal/auth"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/repository"
	"github.com/google/uuid"
)

type principalContextKey string

const principalKey principalContextKey = "brokercore_principal"

// PrincipalFromContext returns the authenticated principal stashed by
// AuthMiddleware, or nil when the request is unauthenticated.
func PrincipalFromContext(ctx context.Context) *model.Principal {
	if p, ok := ctx.Value(principalKey).(*model.Principal); ok {
		return p
	}
	return nil
}

// WithPrincipal attaches a principal to the context. Exposed for handler
// tests.
func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// AuthMiddleware validates the bearer token and resolves the full
// principal, with the grants and affiliate link the scope resolver needs.
func AuthMiddleware(tokenManager *auth.TokenManager, principals repository.PrincipalRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			principalID, err := uuid.Parse(claims.PrincipalID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			principal, err := principals.FindByID(r.Context(), principalID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Unknown principal")
				return
			}
			if !principal.Active {
				respondWithError(w, http.StatusForbidden, "Account is deactivated")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
