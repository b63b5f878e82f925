package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/nkiryanov/bankapi/internal/apperrors"
	"github.com/nkiryanov/bankapi/internal/handlers/render"
	"github.com/nkiryanov/bankapi/internal/logger"
	"github.com/nkiryanov/bankapi/internal/models"
)

type accountResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Title      string    `json:"title"`
	Balance    float64   `json:"balance"`
	Updated    time.Time `json:"updated"`
	Created    time.Time `json:"created"`
}

func toAccountResponse(a models.Account) accountResponse {
	balance, _ := a.Balance.Float64()
	return accountResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Title:      a.Title,
		Balance:    balance,
		Updated:    a.UpdatedAt,
		Created:    a.CreatedAt,
	}
}

func handleListAccounts(service accountService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccounts(r.Context())
		if err != nil {
			l.Error("Failed to list accounts", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		response := make([]accountResponse, 0, len(accounts))
		for _, a := range accounts {
			response = append(response, toAccountResponse(a))
		}
		render.JSON(w, response)
	})
}

func handleCreateAccount(service accountService, l logger.Logger) http.Handler {
	// Client supplied balance is ignored: every account opens with the
	// default balance, so the field is not even decoded
	type request struct {
		CustomerID int64  `json:"customerId" validate:"required"`
		Title      string `json:"title" validate:"required,max=255"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		account, err := service.CreateAccount(r.Context(), req.CustomerID, req.Title)

		switch {
		case err == nil:
			render.JSONWithStatus(w, toAccountResponse(account), http.StatusCreated)
		case errors.Is(err, apperrors.ErrCustomerNotFound):
			// Customer id came from the request body, so it is a client error
			render.ServiceError(w, "Could not find Customer with provided id", http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrInvalidRequest):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		default:
			l.Error("Failed to create account", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleGetAccount(service accountService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := idFromRequest(w, r, "accountId")
		if !ok {
			return
		}

		account, err := service.GetAccount(r.Context(), accountID)

		switch {
		case err == nil:
			render.JSON(w, toAccountResponse(account))
		case errors.Is(err, apperrors.ErrAccountNotFound):
			render.ServiceError(w, "Could not find Account with provided id", http.StatusNotFound)
		default:
			l.Error("Failed to get account", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleUpdateAccount(service accountService, l logger.Logger) http.Handler {
	type request struct {
		Title string `json:"title" validate:"omitempty,max=255"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := idFromRequest(w, r, "accountId")
		if !ok {
			return
		}

		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		account, err := service.UpdateTitle(r.Context(), accountID, req.Title)

		switch {
		case err == nil:
			render.JSON(w, toAccountResponse(account))
		case errors.Is(err, apperrors.ErrAccountNotFound):
			render.ServiceError(w, "Could not find Account with provided id", http.StatusNotFound)
		case errors.Is(err, apperrors.ErrInvalidRequest):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		default:
			l.Error("Failed to update account", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleListAccountTransfers(service transferService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := idFromRequest(w, r, "accountId")
		if !ok {
			return
		}

		transfers, err := service.ListTransfersForAccount(r.Context(), accountID)

		switch {
		case err == nil:
			response := make([]transferResponse, 0, len(transfers))
			for _, t := range transfers {
				response = append(response, toTransferResponse(t))
			}
			render.JSON(w, response)
		case errors.Is(err, apperrors.ErrAccountNotFound):
			render.ServiceError(w, "Could not find Account with provided id", http.StatusNotFound)
		default:
			l.Error("Failed to list account transfers", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}
