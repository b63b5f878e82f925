package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/bankapi/internal/models"
)

// Customer repository interface
type CustomerRepo interface {
	CreateCustomer(ctx context.Context, firstName string, lastName string) (models.Customer, error)

	// Get customer by id
	// If customer not found must return apperrors.ErrCustomerNotFound
	GetCustomer(ctx context.Context, customerID int64) (models.Customer, error)

	ListCustomers(ctx context.Context) ([]models.Customer, error)

	// Update customer names, bumps 'updated_at'
	// If customer not found must return apperrors.ErrCustomerNotFound
	UpdateCustomer(ctx context.Context, customerID int64, firstName string, lastName string) (models.Customer, error)
}

// Account repository interface
type AccountRepo interface {
	CreateAccount(ctx context.Context, customerID int64, title string, balance decimal.Decimal) (models.Account, error)

	// Get account by id
	// If account not found must return apperrors.ErrAccountNotFound
	GetAccount(ctx context.Context, accountID int64) (models.Account, error)

	ListAccounts(ctx context.Context) ([]models.Account, error)
	ListAccountsByCustomer(ctx context.Context, customerID int64) ([]models.Account, error)

	// Update account title, bumps 'version' and 'updated_at'
	// If account not found must return apperrors.ErrAccountNotFound
	UpdateTitle(ctx context.Context, accountID int64, title string) (models.Account, error)

	// Set account balance but only if the row's current version still equals
	// expectedVersion. Bumps 'version' and 'updated_at' on success.
	// Zero affected rows (version mismatch or missing account) must be
	// reported as apperrors.ErrDataConflict, never silently ignored
	UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal, expectedVersion int64) (models.Account, error)
}

// Transfer repository interface
// Transfers are append only: no update or delete methods exist
type TransferRepo interface {
	CreateTransfer(ctx context.Context, title string, amount decimal.Decimal, senderID int64, receiverID int64) (models.Transfer, error)

	// Get transfer by id
	// If transfer not found must return apperrors.ErrTransferNotFound
	GetTransfer(ctx context.Context, transferID int64) (models.Transfer, error)

	ListTransfers(ctx context.Context) ([]models.Transfer, error)

	// List transfers where the account is sender or receiver
	ListTransfersByAccount(ctx context.Context, accountID int64) ([]models.Transfer, error)
}

// Storage aggregates every repo over the same connection or transaction
type Storage interface {
	Customer() CustomerRepo
	Account() AccountRepo
	Transfer() TransferRepo

	// InTx runs fn inside a single database transaction
	// The Storage passed to fn is bound to that transaction; returning an
	// error aborts it so no partial effect is visible to other readers
	InTx(ctx context.Context, fn func(Storage) error) error
}
