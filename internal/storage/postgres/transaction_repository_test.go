package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthurquine/RB-Exchange-1/internal/custom_err"
	"github.com/arthurquine/RB-Exchange-1/internal/models"
)

var transactionColumns = []string{
	"id", "currency_code", "target_currency", "type", "amount", "rate", "request_id", "created_at",
}

func setupRepository(t *testing.T) (*PgTransactionRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &PgTransactionRepository{db: mock}, mock
}

func TestPgTransactionRepository_ListAll_PreservesInsertionOrder(t *testing.T) {
	repo, mock := setupRepository(t)

	// одинаковый created_at: порядок гарантирует только seq
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first := uuid.New()
	second := uuid.New()

	rows := pgxmock.NewRows(transactionColumns).
		AddRow(first, "USD", models.CurrencyEUR, models.TransactionBuy, 100.0, 0.9, "req-1", createdAt).
		AddRow(second, "GBP", models.CurrencyEUR, models.TransactionSell, 40.0, 1.15, "req-2", createdAt)

	mock.ExpectQuery("SELECT (.+) FROM transactions\\s+ORDER BY seq").WillReturnRows(rows)

	transactions, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, first, transactions[0].ID)
	assert.Equal(t, "req-1", transactions[0].RequestID)
	assert.Equal(t, second, transactions[1].ID)
	assert.Equal(t, "req-2", transactions[1].RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgTransactionRepository_GetByID_Success(t *testing.T) {
	repo, mock := setupRepository(t)

	id := uuid.New()
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(transactionColumns).
		AddRow(id, "USD", models.CurrencyEUR, models.TransactionBuy, 100.0, 0.9, "req-1", createdAt)

	mock.ExpectQuery("SELECT (.+) FROM transactions\\s+WHERE id").
		WithArgs(id).
		WillReturnRows(rows)

	transaction, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, transaction.ID)
	assert.Equal(t, "USD", transaction.CurrencyCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgTransactionRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupRepository(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM transactions\\s+WHERE id").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	transaction, err := repo.GetByID(context.Background(), id)

	assert.Nil(t, transaction)
	assert.ErrorIs(t, err, custom_err.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
