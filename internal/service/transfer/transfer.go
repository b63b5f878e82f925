package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/bankapi/internal/apperrors"
	"github.com/nkiryanov/bankapi/internal/models"
	"github.com/nkiryanov/bankapi/internal/repository"
)

const maxTitleLength = 255

// Service moves funds between two accounts as a single atomic operation
//
// Balances are never adjusted with read-add-write against a live row: new
// balances are computed from snapshots and written back conditionally on the
// snapshots' version tokens. A concurrent change to either account turns
// into apperrors.ErrDataConflict instead of a lost update. The service never
// retries on conflict, retry policy belongs to the caller
type Service struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// Transfer moves amount from sender to receiver and records one immutable
// transfer row. Every failure path leaves zero persisted effect
func (s *Service) Transfer(ctx context.Context, senderID int64, receiverID int64, title string, amount decimal.Decimal) (models.Transfer, error) {
	var transfer models.Transfer

	// Validation order is fixed: title, amount, distinct accounts,
	// account existence, then balance
	if title == "" || len(title) > maxTitleLength {
		return transfer, apperrors.NewInvalidRequest("title")
	}

	amount = models.RoundMoney(amount)
	if !amount.IsPositive() {
		return transfer, apperrors.NewInvalidRequest("amount")
	}

	if senderID == receiverID {
		return transfer, apperrors.NewInvalidRequest("same account")
	}

	// Unknown ids came from the request body, so they are reported as
	// invalid request data, not as a missing resource
	sender, err := s.storage.Account().GetAccount(ctx, senderID)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return transfer, apperrors.NewInvalidRequest("unknown sender")
	default:
		return transfer, fmt.Errorf("can't get sender account. Err: %w", err)
	}

	receiver, err := s.storage.Account().GetAccount(ctx, receiverID)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return transfer, apperrors.NewInvalidRequest("unknown receiver")
	default:
		return transfer, fmt.Errorf("can't get receiver account. Err: %w", err)
	}

	if sender.Balance.LessThan(amount) {
		return transfer, apperrors.ErrBalanceInsufficient
	}

	return s.commit(ctx, sender, receiver, title, amount)
}

// commit writes the transfer record and both balance changes in one
// database transaction. Each balance write is gated on the version the
// snapshot was read with, so a conflicting update aborts the whole unit
func (s *Service) commit(ctx context.Context, sender models.Account, receiver models.Account, title string, amount decimal.Decimal) (models.Transfer, error) {
	senderBalance := models.RoundMoney(sender.Balance.Sub(amount))
	receiverBalance := models.RoundMoney(receiver.Balance.Add(amount))

	var transfer models.Transfer
	err := s.storage.InTx(ctx, func(tx repository.Storage) error {
		var err error

		transfer, err = tx.Transfer().CreateTransfer(ctx, title, amount, sender.ID, receiver.ID)
		if err != nil {
			return fmt.Errorf("can't create transfer record. Err: %w", err)
		}

		_, err = tx.Account().UpdateBalance(ctx, sender.ID, senderBalance, sender.Version)
		if err != nil {
			return fmt.Errorf("can't update sender account. Err: %w", err)
		}

		_, err = tx.Account().UpdateBalance(ctx, receiver.ID, receiverBalance, receiver.Version)
		if err != nil {
			return fmt.Errorf("can't update receiver account. Err: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.Transfer{}, err
	}

	// Re-read the committed record so the caller gets the stored row
	return s.storage.Transfer().GetTransfer(ctx, transfer.ID)
}

func (s *Service) GetTransfer(ctx context.Context, transferID int64) (models.Transfer, error) {
	return s.storage.Transfer().GetTransfer(ctx, transferID)
}

func (s *Service) ListTransfers(ctx context.Context) ([]models.Transfer, error) {
	return s.storage.Transfer().ListTransfers(ctx)
}

// ListTransfersForAccount returns transfers the account sent or received
// If the account not exists returns apperrors.ErrAccountNotFound
func (s *Service) ListTransfersForAccount(ctx context.Context, accountID int64) ([]models.Transfer, error) {
	account, err := s.storage.Account().GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return s.storage.Transfer().ListTransfersByAccount(ctx, account.ID)
}
