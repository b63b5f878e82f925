package handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/bankapi/internal/handlers/middleware"
	"github.com/nkiryanov/bankapi/internal/handlers/render"
	"github.com/nkiryanov/bankapi/internal/logger"
	"github.com/nkiryanov/bankapi/internal/models"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	customerService customerService,
	accountService accountService,
	transferService transferService,
	logger logger.Logger,
) http.Handler {
	api := http.NewServeMux()

	api.Handle("GET /customers", handleListCustomers(customerService, logger))
	api.Handle("POST /customers", handleCreateCustomer(customerService, logger))
	api.Handle("GET /customers/{customerId}", handleGetCustomer(customerService, logger))
	api.Handle("PATCH /customers/{customerId}", handleUpdateCustomer(customerService, logger))
	api.Handle("DELETE /customers/{customerId}", handleNotImplemented())
	api.Handle("GET /customers/{customerId}/accounts", handleListCustomerAccounts(accountService, logger))

	api.Handle("GET /accounts", handleListAccounts(accountService, logger))
	api.Handle("POST /accounts", handleCreateAccount(accountService, logger))
	api.Handle("GET /accounts/{accountId}", handleGetAccount(accountService, logger))
	api.Handle("PATCH /accounts/{accountId}", handleUpdateAccount(accountService, logger))
	api.Handle("DELETE /accounts/{accountId}", handleNotImplemented())
	api.Handle("GET /accounts/{accountId}/transfers", handleListAccountTransfers(transferService, logger))

	api.Handle("GET /transfers", handleListTransfers(transferService, logger))
	api.Handle("POST /transfers", handleCreateTransfer(transferService, logger))
	api.Handle("GET /transfers/{transferId}", handleGetTransfer(transferService, logger))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	handler := chain(root,
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(logger),
	)

	return handler
}

func handleNotImplemented() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render.ServiceError(w, "Not implemented", http.StatusNotImplemented)
	})
}

type customerService interface {
	CreateCustomer(ctx context.Context, firstName string, lastName string) (models.Customer, error)

	// Has to return apperrors.ErrCustomerNotFound if customer not found
	GetCustomer(ctx context.Context, customerID int64) (models.Customer, error)

	ListCustomers(ctx context.Context) ([]models.Customer, error)

	// Partial update: empty names keep the stored values
	UpdateCustomer(ctx context.Context, customerID int64, firstName string, lastName string) (models.Customer, error)
}

type accountService interface {
	// Opens account with the fixed default balance
	// Has to return apperrors.ErrCustomerNotFound for unknown customer
	CreateAccount(ctx context.Context, customerID int64, title string) (models.Account, error)

	// Has to return apperrors.ErrAccountNotFound if account not found
	GetAccount(ctx context.Context, accountID int64) (models.Account, error)

	ListAccounts(ctx context.Context) ([]models.Account, error)
	ListAccountsForCustomer(ctx context.Context, customerID int64) ([]models.Account, error)

	// Partial update: empty title keeps the stored one
	UpdateTitle(ctx context.Context, accountID int64, title string) (models.Account, error)
}

type transferService interface {
	// Atomic transfer between two accounts
	// Typed failures: apperrors.ErrInvalidRequest, apperrors.ErrBalanceInsufficient,
	// apperrors.ErrDataConflict; anything else is a storage failure
	Transfer(ctx context.Context, senderID int64, receiverID int64, title string, amount decimal.Decimal) (models.Transfer, error)

	// Has to return apperrors.ErrTransferNotFound if transfer not found
	GetTransfer(ctx context.Context, transferID int64) (models.Transfer, error)

	ListTransfers(ctx context.Context) ([]models.Transfer, error)

	// Has to return apperrors.ErrAccountNotFound for unknown account
	ListTransfersForAccount(ctx context.Context, accountID int64) ([]models.Transfer, error)
}
