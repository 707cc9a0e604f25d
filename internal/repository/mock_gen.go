// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./principal.go -destination=../mocks/mock_principal_repository.go -package=mocks PrincipalRepositoryIface
//go:generate mockgen -source=./client.go -destination=../mocks/mock_client_repository.go -package=mocks ClientRepositoryIface,ClientGrantRepositoryIface
//go:generate mockgen -source=./affiliate.go -destination=../mocks/mock_affiliate_repository.go -package=mocks AffiliateRepositoryIface
//go:generate mockgen -source=./policy.go -destination=../mocks/mock_policy_repository.go -package=mocks PolicyRepositoryIface
//go:generate mockgen -source=./invitation.go -destination=../mocks/mock_invitation_repository.go -package=mocks InvitationRepositoryIface
//go:generate mockgen -source=./claim.go -destination=../mocks/mock_claim_repository.go -package=mocks ClaimRepositoryIface
//go:generate mockgen -source=./ticket.go -destination=../mocks/mock_ticket_repository.go -package=mocks TicketRepositoryIface
//go:generate mockgen -source=./audit_log.go -destination=../mocks/mock_audit_log_repository.go -package=mocks AuditLogRepositoryIface
