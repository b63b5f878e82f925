package account

import (
	"context"
	"fmt"

	"github.com/nkiryanov/bankapi/internal/apperrors"
	"github.com/nkiryanov/bankapi/internal/models"
	"github.com/nkiryanov/bankapi/internal/repository"
)

const maxTitleLength = 255

type Service struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// CreateAccount opens an account for an existing customer
// The opening balance is fixed, any client provided value is ignored
func (s *Service) CreateAccount(ctx context.Context, customerID int64, title string) (models.Account, error) {
	var account models.Account

	if title == "" || len(title) > maxTitleLength {
		return account, apperrors.NewInvalidRequest("title")
	}

	// CustomerRepo reports the missing FK itself, but checking first keeps
	// the error a client one instead of a failed insert
	_, err := s.storage.Customer().GetCustomer(ctx, customerID)
	if err != nil {
		return account, err
	}

	account, err = s.storage.Account().CreateAccount(ctx, customerID, title, models.DefaultAccountBalance)
	if err != nil {
		return account, fmt.Errorf("can't create account. Err: %w", err)
	}

	return account, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID int64) (models.Account, error) {
	return s.storage.Account().GetAccount(ctx, accountID)
}

func (s *Service) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.storage.Account().ListAccounts(ctx)
}

func (s *Service) ListAccountsForCustomer(ctx context.Context, customerID int64) ([]models.Account, error) {
	customer, err := s.storage.Customer().GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.storage.Account().ListAccountsByCustomer(ctx, customer.ID)
}

// UpdateTitle renames an account, partial update semantics: empty title
// keeps the stored one untouched
func (s *Service) UpdateTitle(ctx context.Context, accountID int64, title string) (models.Account, error) {
	var account models.Account

	existing, err := s.storage.Account().GetAccount(ctx, accountID)
	if err != nil {
		return account, err
	}

	if title == "" {
		title = existing.Title
	}
	if len(title) > maxTitleLength {
		return account, apperrors.NewInvalidRequest("title")
	}

	return s.storage.Account().UpdateTitle(ctx, accountID, title)
}
