package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/bankapi/internal/apperrors"
	"github.com/nkiryanov/bankapi/internal/handlers/render"
	"github.com/nkiryanov/bankapi/internal/logger"
	"github.com/nkiryanov/bankapi/internal/models"
)

type transferResponse struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Amount            float64   `json:"amount"`
	SenderAccountID   int64     `json:"senderAccountId"`
	ReceiverAccountID int64     `json:"receiverAccountId"`
	Updated           time.Time `json:"updated"`
	Created           time.Time `json:"created"`
}

func toTransferResponse(t models.Transfer) transferResponse {
	amount, _ := t.Amount.Float64()
	return transferResponse{
		ID:                t.ID,
		Title:             t.Title,
		Amount:            amount,
		SenderAccountID:   t.SenderAccountID,
		ReceiverAccountID: t.ReceiverAccountID,
		Updated:           t.UpdatedAt,
		Created:           t.CreatedAt,
	}
}

func handleListTransfers(service transferService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		transfers, err := service.ListTransfers(r.Context())
		if err != nil {
			l.Error("Failed to list transfers", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		response := make([]transferResponse, 0, len(transfers))
		for _, t := range transfers {
			response = append(response, toTransferResponse(t))
		}
		render.JSON(w, response)
	})
}

func handleCreateTransfer(service transferService, l logger.Logger) http.Handler {
	// No validate tags here on purpose: the transfer service owns the
	// validation rules and their order, the handler only decodes
	type request struct {
		Title             string          `json:"title"`
		Amount            decimal.Decimal `json:"amount"`
		SenderAccountID   int64           `json:"senderAccountId"`
		ReceiverAccountID int64           `json:"receiverAccountId"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		transfer, err := service.Transfer(r.Context(), req.SenderAccountID, req.ReceiverAccountID, req.Title, req.Amount)

		switch {
		case err == nil:
			render.JSONWithStatus(w, toTransferResponse(transfer), http.StatusCreated)
		case errors.Is(err, apperrors.ErrInvalidRequest):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrBalanceInsufficient):
			render.ServiceError(w, "Insufficient balance", http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrDataConflict):
			// Transient: the caller may re-fetch accounts and retry
			render.ServiceError(w, "Account data conflict, try again", http.StatusConflict)
		default:
			l.Error("Failed to create transfer", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleGetTransfer(service transferService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		transferID, ok := idFromRequest(w, r, "transferId")
		if !ok {
			return
		}

		transfer, err := service.GetTransfer(r.Context(), transferID)

		switch {
		case err == nil:
			render.JSON(w, toTransferResponse(transfer))
		case errors.Is(err, apperrors.ErrTransferNotFound):
			render.ServiceError(w, "Could not find Transfer with provided id", http.StatusNotFound)
		default:
			l.Error("Failed to get transfer", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}
