package account

import (
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/bankapi/internal/apperrors"
	"github.com/nkiryanov/bankapi/internal/models"
	"github.com/nkiryanov/bankapi/internal/repository"
	"github.com/nkiryanov/bankapi/internal/repository/postgres"
	"github.com/nkiryanov/bankapi/internal/testutil"
)

func TestAccountService(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	// Helper function to create Service within transaction
	inTx := func(t *testing.T, fn func(s *Service, storage repository.Storage)) {
		testutil.InTx(pg.Pool, t, func(tx pgx.Tx) {
			storage := postgres.NewStorage(tx)
			fn(NewService(storage), storage)
		})
	}

	t.Run("CreateAccount", func(t *testing.T) {
		t.Run("create ok", func(t *testing.T) {
			inTx(t, func(s *Service, storage repository.Storage) {
				customer, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
				require.NoError(t, err)

				account, err := s.CreateAccount(t.Context(), customer.ID, "Savings")

				require.NoError(t, err, "creating account should be ok")
				require.NotZero(t, account.ID, "account id should be assigned")
				require.Equal(t, customer.ID, account.CustomerID)
				require.Equal(t, "Savings", account.Title)
				require.True(t, account.Balance.Equal(models.DefaultAccountBalance), "account should open with the default balance")
			})
		})

		t.Run("empty title fail", func(t *testing.T) {
			inTx(t, func(s *Service, storage repository.Storage) {
				customer, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
				require.NoError(t, err)

				_, err = s.CreateAccount(t.Context(), customer.ID, "")

				require.ErrorIs(t, err, apperrors.ErrInvalidRequest, "empty title should be rejected")
			})
		})

		t.Run("too long title fail", func(t *testing.T) {
			inTx(t, func(s *Service, storage repository.Storage) {
				customer, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
				require.NoError(t, err)

				_, err = s.CreateAccount(t.Context(), customer.ID, strings.Repeat("a", 256))

				require.ErrorIs(t, err, apperrors.ErrInvalidRequest, "title over 255 chars should be rejected")
			})
		})

		t.Run("unknown customer fail", func(t *testing.T) {
			inTx(t, func(s *Service, storage repository.Storage) {
				customer, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
				require.NoError(t, err)

				_, err = s.CreateAccount(t.Context(), customer.ID+1000, "Savings")

				require.ErrorIs(t, err, apperrors.ErrCustomerNotFound, "unknown customer should be rejected")
			})
		})
	})

	t.Run("UpdateTitle", func(t *testing.T) {
		t.Run("update ok", func(t *testing.T) {
			inTx(t, func(s *Service, storage repository.Storage) {
				customer, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
				require.NoError(t, err)
				account, err := s.CreateAccount(t.Context(), customer.ID, "Savings")
				require.NoError(t, err)

				updated, err := s.UpdateTitle(t.Context(), account.ID, "Vacation fund")

				require.NoError(t, err, "updating title should be ok")
				require.Equal(t, "Vacation fund", updated.Title)
			})
		})

		t.Run("empty title keeps stored one", func(t *testing.T) {
			inTx(t, func(s *Service, storage repository.Storage) {
				customer, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
				require.NoError(t, err)
				account, err := s.CreateAccount(t.Context(), customer.ID, "Savings")
				require.NoError(t, err)

				updated, err := s.UpdateTitle(t.Context(), account.ID, "")

				require.NoError(t, err, "partial update with empty title should be ok")
				require.Equal(t, "Savings", updated.Title, "stored title should be kept")
			})
		})

		t.Run("unknown account fail", func(t *testing.T) {
			inTx(t, func(s *Service, storage repository.Storage) {
				customer, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
				require.NoError(t, err)
				account, err := s.CreateAccount(t.Context(), customer.ID, "Savings")
				require.NoError(t, err)

				_, err = s.UpdateTitle(t.Context(), account.ID+1000, "Vacation fund")

				require.ErrorIs(t, err, apperrors.ErrAccountNotFound)
			})
		})
	})

	t.Run("ListAccountsForCustomer", func(t *testing.T) {
		inTx(t, func(s *Service, storage repository.Storage) {
			customer, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
			require.NoError(t, err)
			_, err = s.CreateAccount(t.Context(), customer.ID, "Savings")
			require.NoError(t, err)
			_, err = s.CreateAccount(t.Context(), customer.ID, "Checking")
			require.NoError(t, err)

			accounts, err := s.ListAccountsForCustomer(t.Context(), customer.ID)
			require.NoError(t, err, "listing accounts should be ok")
			require.Len(t, accounts, 2)

			_, err = s.ListAccountsForCustomer(t.Context(), customer.ID+1000)
			require.ErrorIs(t, err, apperrors.ErrCustomerNotFound, "unknown customer should be rejected")
		})
	})
}
