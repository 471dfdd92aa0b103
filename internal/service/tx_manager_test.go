package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthurquine/RB-Exchange-1/internal/custom_err"
)

func setupTxManager(t *testing.T) (*PgxTxManager, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewPgxTxManager(mock), mock
}

func TestPgxTxManager_WithTx_CommitsOnSuccess(t *testing.T) {
	txManager, mock := setupTxManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := txManager.WithTx(context.Background(), func(tx pgx.Tx) error {
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTxManager_WithTx_RollsBackOnDuplicateRequest(t *testing.T) {
	txManager, mock := setupTxManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	// так проверка идемпотентности прерывает регистрацию операции
	err := txManager.WithTx(context.Background(), func(tx pgx.Tx) error {
		return custom_err.ErrDuplicateRequest
	})

	// ошибка функции возвращается без обёртки, errors.Is работает у вызывающего
	assert.ErrorIs(t, err, custom_err.ErrDuplicateRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTxManager_WithTx_WrapsBeginError(t *testing.T) {
	txManager, mock := setupTxManager(t)

	baseErr := errors.New("connection refused")
	mock.ExpectBegin().WillReturnError(baseErr)

	called := false
	err := txManager.WithTx(context.Background(), func(tx pgx.Tx) error {
		called = true
		return nil
	})

	assert.False(t, called)
	assert.ErrorIs(t, err, baseErr)
	assert.Contains(t, err.Error(), "begin tx:")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTxManager_WithTx_WrapsCommitError(t *testing.T) {
	txManager, mock := setupTxManager(t)

	baseErr := errors.New("deadlock detected")
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(baseErr)

	err := txManager.WithTx(context.Background(), func(tx pgx.Tx) error {
		return nil
	})

	assert.ErrorIs(t, err, baseErr)
	assert.Contains(t, err.Error(), "commit tx:")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTxManager_WithTx_ContextCanceled(t *testing.T) {
	txManager, mock := setupTxManager(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock.ExpectBegin().WillReturnError(context.Canceled)

	err := txManager.WithTx(ctx, func(tx pgx.Tx) error {
		t.Error("функция не должна вызываться при отменённом контексте")
		return nil
	})

	// отмена контекста различима сквозь обёртку
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "begin tx:")
}
