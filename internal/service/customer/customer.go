package customer

import (
	"context"
	"fmt"

	"github.com/nkiryanov/bankapi/internal/apperrors"
	"github.com/nkiryanov/bankapi/internal/models"
	"github.com/nkiryanov/bankapi/internal/repository"
)

const maxNameLength = 255

type Service struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

func (s *Service) CreateCustomer(ctx context.Context, firstName string, lastName string) (models.Customer, error) {
	var customer models.Customer

	if firstName == "" || len(firstName) > maxNameLength {
		return customer, apperrors.NewInvalidRequest("firstName")
	}
	if lastName == "" || len(lastName) > maxNameLength {
		return customer, apperrors.NewInvalidRequest("lastName")
	}

	customer, err := s.storage.Customer().CreateCustomer(ctx, firstName, lastName)
	if err != nil {
		return customer, fmt.Errorf("can't create customer. Err: %w", err)
	}

	return customer, nil
}

func (s *Service) GetCustomer(ctx context.Context, customerID int64) (models.Customer, error) {
	return s.storage.Customer().GetCustomer(ctx, customerID)
}

func (s *Service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.storage.Customer().ListCustomers(ctx)
}

// UpdateCustomer renames a customer, partial update semantics: empty names
// keep the stored values
func (s *Service) UpdateCustomer(ctx context.Context, customerID int64, firstName string, lastName string) (models.Customer, error) {
	var customer models.Customer

	existing, err := s.storage.Customer().GetCustomer(ctx, customerID)
	if err != nil {
		return customer, err
	}

	if firstName == "" {
		firstName = existing.FirstName
	}
	if lastName == "" {
		lastName = existing.LastName
	}
	if len(firstName) > maxNameLength {
		return customer, apperrors.NewInvalidRequest("firstName")
	}
	if len(lastName) > maxNameLength {
		return customer, apperrors.NewInvalidRequest("lastName")
	}

	return s.storage.Customer().UpdateCustomer(ctx, customerID, firstName, lastName)
}
