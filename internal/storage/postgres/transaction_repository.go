package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/arthurquine/RB-Exchange-1/internal/custom_err"
	"github.com/arthurquine/RB-Exchange-1/internal/models"
	"github.com/arthurquine/RB-Exchange-1/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, transaction *models.Transaction) error
	TransactionExistsTx(ctx context.Context, tx pgx.Tx, requestID string) (bool, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
}

// PgxQuerier срез пула, достаточный для запросов чтения
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgTransactionRepository struct {
	db PgxQuerier
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &PgTransactionRepository{db: db}
}

func (r *PgTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	const op = "storage.GetByID"
	var t models.Transaction
	err := r.db.QueryRow(ctx, storage.GetTransactionByIDQuery, id).Scan(
		&t.ID,
		&t.CurrencyCode,
		&t.TargetCurrency,
		&t.Type,
		&t.Amount,
		&t.Rate,
		&t.RequestID,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_err.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}

// ListAll возвращает всю историю операций в порядке добавления.
// Агрегация балансов пересчитывается на каждый запрос из этого списка.
func (r *PgTransactionRepository) ListAll(ctx context.Context) ([]models.Transaction, error) {
	const op = "storage.ListAll"

	rows, err := r.db.Query(ctx, storage.ListTransactionsQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.ID,
			&t.CurrencyCode,
			&t.TargetCurrency,
			&t.Type,
			&t.Amount,
			&t.Rate,
			&t.RequestID,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan error: %w", op, err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return transactions, nil
}
