package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		// Single-statement writes need no wrapping transaction and keep
		// the mock expectations one-to-one with emitted SQL.
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestInvitationUpdateStatusIf(t *testing.T) {
	id := uuid.New()

	t.Run("flips the status when the stored value matches", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewInvitationRepository(db)

		mock.ExpectExec(`UPDATE "invitations" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatusIf(context.Background(), id, model.InvitationPending, model.InvitationAccepted)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero affected rows surfaces as conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewInvitationRepository(db)

		mock.ExpectExec(`UPDATE "invitations" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatusIf(context.Background(), id, model.InvitationPending, model.InvitationAccepted)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvitationFindByToken(t *testing.T) {
	t.Run("missing token maps to the domain error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewInvitationRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "invitations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByToken(context.Background(), "missing-token")
		assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClaimUpdateStatusIf(t *testing.T) {
	t.Run("lost race surfaces as conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewClaimRepository(db)

		mock.ExpectExec(`UPDATE "claims" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatusIf(context.Background(), uuid.New(), model.ClaimUnderReview, model.ClaimApproved)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTicketUpdateStatusIf(t *testing.T) {
	t.Run("matched row succeeds", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewTicketRepository(db)

		mock.ExpectExec(`UPDATE "tickets" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatusIf(context.Background(), uuid.New(), model.TicketOpen, model.TicketInProgress)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
