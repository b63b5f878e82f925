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

type AccountRepo struct {
	DB DBTX
}

const createAccount = `-- name: CreateAccount
INSERT INTO accounts (customer_id, title, balance)
VALUES ($1, $2, $3)
RETURNING id, customer_id, title, balance, version, updated_at, created_at
`

func (r *AccountRepo) CreateAccount(ctx context.Context, customerID int64, title string, balance decimal.Decimal) (models.Account, error) {
	rows, _ := r.DB.Query(ctx, createAccount, customerID, title, balance)
	account, err := pgx.CollectOneRow(rows, rowToAccount)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return account, apperrors.ErrCustomerNotFound
		}

		return account, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

const getAccount = `-- name: GetAccount
SELECT id, customer_id, title, balance, version, updated_at, created_at FROM accounts
WHERE id = $1
`

func (r *AccountRepo) GetAccount(ctx context.Context, accountID int64) (models.Account, error) {
	rows, _ := r.DB.Query(ctx, getAccount, accountID)
	account, err := pgx.CollectOneRow(rows, rowToAccount)

	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, pgx.ErrNoRows):
		return account, apperrors.ErrAccountNotFound
	default:
		return account, fmt.Errorf("db error: %w", err)
	}
}

const listAccounts = `-- name: ListAccounts
SELECT id, customer_id, title, balance, version, updated_at, created_at FROM accounts
ORDER BY id
`

func (r *AccountRepo) ListAccounts(ctx context.Context) ([]models.Account, error) {
	rows, _ := r.DB.Query(ctx, listAccounts)
	accounts, err := pgx.CollectRows(rows, rowToAccount)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return accounts, nil
}

const listAccountsByCustomer = `-- name: ListAccountsByCustomer
SELECT id, customer_id, title, balance, version, updated_at, created_at FROM accounts
WHERE customer_id = $1
ORDER BY id
`

func (r *AccountRepo) ListAccountsByCustomer(ctx context.Context, customerID int64) ([]models.Account, error) {
	rows, _ := r.DB.Query(ctx, listAccountsByCustomer, customerID)
	accounts, err := pgx.CollectRows(rows, rowToAccount)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return accounts, nil
}

const updateTitle = `-- name: UpdateTitle
UPDATE accounts
SET title = $2, version = version + 1, updated_at = now()
WHERE id = $1
RETURNING id, customer_id, title, balance, version, updated_at, created_at
`

func (r *AccountRepo) UpdateTitle(ctx context.Context, accountID int64, title string) (models.Account, error) {
	rows, _ := r.DB.Query(ctx, updateTitle, accountID, title)
	account, err := pgx.CollectOneRow(rows, rowToAccount)

	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, pgx.ErrNoRows):
		return account, apperrors.ErrAccountNotFound
	default:
		return account, fmt.Errorf("db error: %w", err)
	}
}

// Conditional write the transfer engine depends on: the balance is set only
// if nobody bumped the row version since the snapshot was read
const updateBalance = `-- name: UpdateBalance
UPDATE accounts
SET balance = $2, version = version + 1, updated_at = now()
WHERE id = $1 AND version = $3
RETURNING id, customer_id, title, balance, version, updated_at, created_at
`

func (r *AccountRepo) UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal, expectedVersion int64) (models.Account, error) {
	rows, _ := r.DB.Query(ctx, updateBalance, accountID, balance, expectedVersion)
	account, err := pgx.CollectOneRow(rows, rowToAccount)

	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, pgx.ErrNoRows):
		// Version no longer matches or the account is gone, either way the
		// snapshot the caller computed the balance from is stale
		return account, apperrors.ErrDataConflict
	default:
		return account, fmt.Errorf("db error: %w", err)
	}
}

func rowToAccount(row pgx.CollectableRow) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.CustomerID, &a.Title, &a.Balance, &a.Version, &a.UpdatedAt, &a.CreatedAt)
	return a, err
}
