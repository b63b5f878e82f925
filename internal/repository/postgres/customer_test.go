package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/bankapi/internal/apperrors"
	"github.com/nkiryanov/bankapi/internal/repository"
	"github.com/nkiryanov/bankapi/internal/testutil"
)

func TestCustomer(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	inTx := func(t *testing.T, outerTx DBTX, fn func(pgx.Tx, repository.Storage)) {
		testutil.InTx(outerTx, t, func(innerTx pgx.Tx) {
			storage := NewStorage(innerTx)
			fn(innerTx, storage)
		})
	}

	t.Run("CreateCustomer", func(t *testing.T) {
		inTx(t, pg.Pool, func(tx pgx.Tx, storage repository.Storage) {
			customer, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")

			require.NoError(t, err, "customer has to be created ok")
			require.NotZero(t, customer.ID, "id should be assigned by the database")
			require.Equal(t, "John", customer.FirstName)
			require.Equal(t, "Doe", customer.LastName)
			require.NotZero(t, customer.CreatedAt, "created timestamp should be set")
			require.NotZero(t, customer.UpdatedAt, "updated timestamp should be set")
		})
	})

	t.Run("GetCustomer", func(t *testing.T) {
		inTx(t, pg.Pool, func(tx pgx.Tx, storage repository.Storage) {
			created, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
			require.NoError(t, err)

			t.Run("get existing", func(t *testing.T) {
				inTx(t, tx, func(ttx pgx.Tx, storage repository.Storage) {
					customer, err := storage.Customer().GetCustomer(t.Context(), created.ID)

					require.NoError(t, err, "getting existing customer should not fail")
					require.Equal(t, created.ID, customer.ID)
					require.Equal(t, "John", customer.FirstName)
				})
			})

			t.Run("get nonexistent", func(t *testing.T) {
				inTx(t, tx, func(ttx pgx.Tx, storage repository.Storage) {
					_, err := storage.Customer().GetCustomer(t.Context(), created.ID+1000)

					require.Error(t, err, "getting nonexistent customer should fail")
					require.ErrorIs(t, err, apperrors.ErrCustomerNotFound, "should return well known error")
				})
			})
		})
	})

	t.Run("ListCustomers", func(t *testing.T) {
		inTx(t, pg.Pool, func(tx pgx.Tx, storage repository.Storage) {
			first, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
			require.NoError(t, err)
			second, err := storage.Customer().CreateCustomer(t.Context(), "Jane", "Roe")
			require.NoError(t, err)

			customers, err := storage.Customer().ListCustomers(t.Context())

			require.NoError(t, err, "listing customers should not fail")
			require.Len(t, customers, 2)
			require.Equal(t, first.ID, customers[0].ID, "customers should be ordered by id")
			require.Equal(t, second.ID, customers[1].ID)
		})
	})

	t.Run("UpdateCustomer", func(t *testing.T) {
		inTx(t, pg.Pool, func(tx pgx.Tx, storage repository.Storage) {
			created, err := storage.Customer().CreateCustomer(t.Context(), "John", "Doe")
			require.NoError(t, err)

			t.Run("update ok", func(t *testing.T) {
				inTx(t, tx, func(ttx pgx.Tx, storage repository.Storage) {
					updated, err := storage.Customer().UpdateCustomer(t.Context(), created.ID, "Johnny", "Doe")

					require.NoError(t, err, "updating customer should not fail")
					require.Equal(t, "Johnny", updated.FirstName)
					require.Equal(t, "Doe", updated.LastName)
					require.Equal(t, created.CreatedAt, updated.CreatedAt, "created timestamp is immutable")
				})
			})

			t.Run("update nonexistent", func(t *testing.T) {
				inTx(t, tx, func(ttx pgx.Tx, storage repository.Storage) {
					_, err := storage.Customer().UpdateCustomer(t.Context(), created.ID+1000, "Johnny", "Doe")

					require.Error(t, err, "updating nonexistent customer should fail")
					require.ErrorIs(t, err, apperrors.ErrCustomerNotFound, "should return well known error")
				})
			})
		})
	})
}
