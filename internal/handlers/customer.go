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

type customerResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Updated   time.Time `json:"updated"`
	Created   time.Time `json:"created"`
}

func toCustomerResponse(c models.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Updated:   c.UpdatedAt,
		Created:   c.CreatedAt,
	}
}

func handleListCustomers(service customerService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers(r.Context())
		if err != nil {
			l.Error("Failed to list customers", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		response := make([]customerResponse, 0, len(customers))
		for _, c := range customers {
			response = append(response, toCustomerResponse(c))
		}
		render.JSON(w, response)
	})
}

func handleCreateCustomer(service customerService, l logger.Logger) http.Handler {
	type request struct {
		FirstName string `json:"firstName" validate:"required,max=255"`
		LastName  string `json:"lastName" validate:"required,max=255"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		customer, err := service.CreateCustomer(r.Context(), req.FirstName, req.LastName)

		switch {
		case err == nil:
			render.JSONWithStatus(w, toCustomerResponse(customer), http.StatusCreated)
		case errors.Is(err, apperrors.ErrInvalidRequest):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		default:
			l.Error("Failed to create customer", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleGetCustomer(service customerService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := idFromRequest(w, r, "customerId")
		if !ok {
			return
		}

		customer, err := service.GetCustomer(r.Context(), customerID)

		switch {
		case err == nil:
			render.JSON(w, toCustomerResponse(customer))
		case errors.Is(err, apperrors.ErrCustomerNotFound):
			render.ServiceError(w, "Could not find Customer with provided id", http.StatusNotFound)
		default:
			l.Error("Failed to get customer", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleUpdateCustomer(service customerService, l logger.Logger) http.Handler {
	type request struct {
		FirstName string `json:"firstName" validate:"omitempty,max=255"`
		LastName  string `json:"lastName" validate:"omitempty,max=255"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := idFromRequest(w, r, "customerId")
		if !ok {
			return
		}

		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		customer, err := service.UpdateCustomer(r.Context(), customerID, req.FirstName, req.LastName)

		switch {
		case err == nil:
			render.JSON(w, toCustomerResponse(customer))
		case errors.Is(err, apperrors.ErrCustomerNotFound):
			render.ServiceError(w, "Could not find Customer with provided id", http.StatusNotFound)
		case errors.Is(err, apperrors.ErrInvalidRequest):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		default:
			l.Error("Failed to update customer", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleListCustomerAccounts(service accountService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := idFromRequest(w, r, "customerId")
		if !ok {
			return
		}

		accounts, err := service.ListAccountsForCustomer(r.Context(), customerID)

		switch {
		case err == nil:
			response := make([]accountResponse, 0, len(accounts))
			for _, a := range accounts {
				response = append(response, toAccountResponse(a))
			}
			render.JSON(w, response)
		case errors.Is(err, apperrors.ErrCustomerNotFound):
			render.ServiceError(w, "Could not find Customer with provided id", http.StatusNotFound)
		default:
			l.Error("Failed to list customer accounts", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}
