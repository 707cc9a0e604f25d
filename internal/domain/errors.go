// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// Lifecycle errors
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
	ErrExpired           = errors.New("expired")
	ErrAlreadyExists     = errors.New("already exists")

	// Principal-related errors
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPrincipalInactive  = errors.New("principal is deactivated")

	// Invitation-related errors
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvalidRole        = errors.New("invalid role for invitation type")

	// Affiliate-related errors
	ErrAffiliateNotFound       = errors.New("affiliate not found")
	ErrInvalidPrimaryAffiliate = errors.New("primary affiliate must be an owner in the same client")

	// Claim-related errors
	ErrClaimNotFound        = errors.New("claim not found")
	ErrPatientNotOnPolicy   = errors.New("patient is not covered by the claim policy")
	ErrPolicyNotFound       = errors.New("policy not found")
	ErrClaimInvoiceNotFound = errors.New("claim invoice not found")

	// Ticket-related errors
	ErrTicketNotFound = errors.New("ticket not found")
)
