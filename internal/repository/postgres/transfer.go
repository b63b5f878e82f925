package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/nkiryanov/bankapi/internal/apperrors"
	"github.com/nkiryanov/bankapi/internal/models"
)

// TransferRepo is append only: rows are inserted once and never touched again
type TransferRepo struct {
	DB DBTX
}

const createTransfer = `-- name: CreateTransfer
INSERT INTO transfers (title, amount, sender_account_id, receiver_account_id)
VALUES ($1, $2, $3, $4)
RETURNING id, title, amount, sender_account_id, receiver_account_id, updated_at, created_at
`

func (r *TransferRepo) CreateTransfer(ctx context.Context, title string, amount decimal.Decimal, senderID int64, receiverID int64) (models.Transfer, error) {
	rows, _ := r.DB.Query(ctx, createTransfer, title, amount, senderID, receiverID)
	transfer, err := pgx.CollectOneRow(rows, rowToTransfer)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return transfer, apperrors.ErrAccountNotFound
		}

		return transfer, fmt.Errorf("db error: %w", err)
	}

	return transfer, nil
}

const getTransfer = `-- name: GetTransfer
SELECT id, title, amount, sender_account_id, receiver_account_id, updated_at, created_at FROM transfers
WHERE id = $1
`

func (r *TransferRepo) GetTransfer(ctx context.Context, transferID int64) (models.Transfer, error) {
	rows, _ := r.DB.Query(ctx, getTransfer, transferID)
	transfer, err := pgx.CollectOneRow(rows, rowToTransfer)

	switch {
	case err == nil:
		return transfer, nil
	case errors.Is(err, pgx.ErrNoRows):
		return transfer, apperrors.ErrTransferNotFound
	default:
		return transfer, fmt.Errorf("db error: %w", err)
	}
}

const listTransfers = `-- name: ListTransfers
SELECT id, title, amount, sender_account_id, receiver_account_id, updated_at, created_at FROM transfers
ORDER BY id
`

func (r *TransferRepo) ListTransfers(ctx context.Context) ([]models.Transfer, error) {
	rows, _ := r.DB.Query(ctx, listTransfers)
	transfers, err := pgx.CollectRows(rows, rowToTransfer)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return transfers, nil
}

const listTransfersByAccount = `-- name: ListTransfersByAccount
SELECT id, title, amount, sender_account_id, receiver_account_id, updated_at, created_at FROM transfers
WHERE sender_account_id = $1 OR receiver_account_id = $1
ORDER BY id
`

func (r *TransferRepo) ListTransfersByAccount(ctx context.Context, accountID int64) ([]models.Transfer, error) {
	rows, _ := r.DB.Query(ctx, listTransfersByAccount, accountID)
	transfers, err := pgx.CollectRows(rows, rowToTransfer)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return transfers, nil
}

func rowToTransfer(row pgx.CollectableRow) (models.Transfer, error) {
	var t models.Transfer
	err := row.Scan(&t.ID, &t.Title, &t.Amount, &t.SenderAccountID, &t.ReceiverAccountID, &t.UpdatedAt, &t.CreatedAt)
	return t, err
}
