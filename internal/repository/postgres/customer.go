package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nkiryanov/bankapi/internal/apperrors"
	"github.com/nkiryanov/bankapi/internal/models"
)

type CustomerRepo struct {
	DB DBTX
}

const createCustomer = `-- name: CreateCustomer
INSERT INTO customers (first_name, last_name)
VALUES ($1, $2)
RETURNING id, first_name, last_name, updated_at, created_at
`

func (r *CustomerRepo) CreateCustomer(ctx context.Context, firstName string, lastName string) (models.Customer, error) {
	rows, _ := r.DB.Query(ctx, createCustomer, firstName, lastName)
	customer, err := pgx.CollectOneRow(rows, rowToCustomer)

	if err != nil {
		return customer, fmt.Errorf("db error: %w", err)
	}

	return customer, nil
}

const getCustomer = `-- name: GetCustomer
SELECT id, first_name, last_name, updated_at, created_at FROM customers
WHERE id = $1
`

func (r *CustomerRepo) GetCustomer(ctx context.Context, customerID int64) (models.Customer, error) {
	rows, _ := r.DB.Query(ctx, getCustomer, customerID)
	customer, err := pgx.CollectOneRow(rows, rowToCustomer)

	switch {
	case err == nil:
		return customer, nil
	case errors.Is(err, pgx.ErrNoRows):
		return customer, apperrors.ErrCustomerNotFound
	default:
		return customer, fmt.Errorf("db error: %w", err)
	}
}

const listCustomers = `-- name: ListCustomers
SELECT id, first_name, last_name, updated_at, created_at FROM customers
ORDER BY id
`

func (r *CustomerRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, _ := r.DB.Query(ctx, listCustomers)
	customers, err := pgx.CollectRows(rows, rowToCustomer)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return customers, nil
}

const updateCustomer = `-- name: UpdateCustomer
UPDATE customers
SET first_name = $2, last_name = $3, updated_at = now()
WHERE id = $1
RETURNING id, first_name, last_name, updated_at, created_at
`

func (r *CustomerRepo) UpdateCustomer(ctx context.Context, customerID int64, firstName string, lastName string) (models.Customer, error) {
	rows, _ := r.DB.Query(ctx, updateCustomer, customerID, firstName, lastName)
	customer, err := pgx.CollectOneRow(rows, rowToCustomer)

	switch {
	case err == nil:
		return customer, nil
	case errors.Is(err, pgx.ErrNoRows):
		return customer, apperrors.ErrCustomerNotFound
	default:
		return customer, fmt.Errorf("db error: %w", err)
	}
}

func rowToCustomer(row pgx.CollectableRow) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.UpdatedAt, &c.CreatedAt)
	return c, err
}
