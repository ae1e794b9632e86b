package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/partner"
	"github.com/oms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCustomerRepository wires the repository to a sqlmock-backed
// postgres dialector for asserting the generated SQL
func newMockCustomerRepository(t *testing.T) (*GormCustomerRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewGormCustomerRepository(db), mock, mockDB
}

func TestGormCustomerRepository_FindByID_SQL(t *testing.T) {
	t.Run("maps a row to the customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "created_at", "updated_at", "tax_id", "first_name", "last_name",
			"identity_document", "phone", "email", "address", "city", "state", "postal_code",
		}).AddRow(
			customerID.String(), now, now, "TAX123", "Maria", "Lopez",
			"", "", "maria@example.com", "123 Main St", "Springfield", "Oregon", "97477",
		)

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnRows(rows)

		customer, err := repo.FindByID(context.Background(), customerID)

		require.NoError(t, err)
		assert.Equal(t, "Maria", customer.FirstName)
		assert.Equal(t, "Springfield", customer.City)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("translates record not found", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), customerID)

		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_Filters(t *testing.T) {
	ctx := context.Background()

	t.Run("city filter matches case-insensitive substrings", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		seedCustomer(t, db, "Ana", "Springfield", "Oregon")
		seedCustomer(t, db, "Bruno", "West Springfield", "Massachusetts")
		seedCustomer(t, db, "Clara", "Portland", "Oregon")

		customers, err := repo.FindAllWithFilters(ctx, 10, 0, "SPRING", "")

		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Ana", customers[0].FirstName)
		assert.Equal(t, "Bruno", customers[1].FirstName)
	})

	t.Run("city and state filters combine with AND", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		seedCustomer(t, db, "Ana", "Springfield", "Oregon")
		seedCustomer(t, db, "Bruno", "West Springfield", "Massachusetts")

		customers, err := repo.FindAllWithFilters(ctx, 10, 0, "springfield", "oregon")

		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Ana", customers[0].FirstName)
	})

	t.Run("no filters returns everyone ordered by first name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		seedCustomer(t, db, "Clara", "Portland", "Oregon")
		seedCustomer(t, db, "Ana", "Springfield", "Oregon")

		customers, err := repo.FindAll(ctx, 10, 0)

		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Ana", customers[0].FirstName)
		assert.Equal(t, "Clara", customers[1].FirstName)
	})
}

func TestGormCustomerRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("UpdateByID overwrites the stored fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		customer := seedCustomer(t, db, "Ana", "Springfield", "Oregon")

		incoming, err := partner.NewCustomer(
			"TAX456", "Ana", "Ferreira",
			"ana@example.com", "456 Oak Ave", "Portland", "Oregon", "97201",
		)
		require.NoError(t, err)

		updated, err := repo.UpdateByID(ctx, customer.ID, incoming)

		require.NoError(t, err)
		assert.Equal(t, customer.ID, updated.ID)
		assert.Equal(t, "Ferreira", updated.LastName)
		assert.Equal(t, "Portland", updated.City)
	})

	t.Run("DeleteByID reports whether a row was removed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		customer := seedCustomer(t, db, "Ana", "Springfield", "Oregon")

		deleted, err := repo.DeleteByID(ctx, customer.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.DeleteByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
