package postgres

import (
	"context"
	"errors"

	"github.com/arthurquine/RB-Exchange-1/internal/custom_err"
	"github.com/arthurquine/RB-Exchange-1/internal/models"
	"github.com/arthurquine/RB-Exchange-1/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *PgTransactionRepository) CreateTx(ctx context.Context, tx pgx.Tx, transaction *models.Transaction) error {
	err := tx.QueryRow(ctx,
		storage.CreateTransactionQuery,
		transaction.ID,
		transaction.CurrencyCode,
		transaction.TargetCurrency,
		transaction.Type,
		transaction.Amount,
		transaction.Rate,
		transaction.RequestID,
	).Scan(&transaction.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return custom_err.ErrDuplicateRequest
			case "23514":
				return custom_err.ErrInvalidInput
			}
		}
		return err
	}
	return nil
}

func (r *PgTransactionRepository) TransactionExistsTx(ctx context.Context, tx pgx.Tx, requestID string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, storage.CheckTransactionExistsQuery, requestID).Scan(&exists)
	return exists, err
}
