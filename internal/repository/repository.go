// internal/repository/repository.go
package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every store adapter bound to one database handle.
// Inside a unit of work the handle is the open transaction, so writes made
// through any of the adapters commit together or not at all.
type Repositories struct {
	Principals  PrincipalRepositoryIface
	Grants      ClientGrantRepositoryIface
	Clients     ClientRepositoryIface
	Affiliates  AffiliateRepositoryIface
	Policies    PolicyRepositoryIface
	Invitations InvitationRepositoryIface
	Claims      ClaimRepositoryIface
	Tickets     TicketRepositoryIface
	AuditLogs   AuditLogRepositoryIface
}

// NewRepositories builds the adapter set over the given handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Principals:  NewPrincipalRepository(db),
		Grants:      NewClientGrantRepository(db),
		Clients:     NewClientRepository(db),
		Affiliates:  NewAffiliateRepository(db),
		Policies:    NewPolicyRepository(db),
		Invitations: NewInvitationRepository(db),
		Claims:      NewClaimRepository(db),
		Tickets:     NewTicketRepository(db),
		AuditLogs:   NewAuditLogRepository(db),
	}
}

// UnitOfWork scopes a function to one ACID transaction. The function
// receives repositories bound to the transaction; returning an error rolls
// everything back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r *Repositories) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a transaction scope over a gorm handle.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(r *Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
