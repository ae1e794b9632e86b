package persistence

import (
	"testing"

	"github.com/oms/backend/internal/domain/catalog"
	"github.com/oms/backend/internal/domain/inventory"
	"github.com/oms/backend/internal/domain/partner"
	"github.com/oms/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Category{},
		&catalog.Product{},
		&inventory.Stock{},
		&partner.Customer{},
		&trade.Order{},
		&trade.OrderDetail{},
	)
	require.NoError(t, err)

	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *catalog.Category {
	t.Helper()

	category, err := catalog.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, category *catalog.Category, name string, price string) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(name, decimal.RequireFromString(price), category.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedCustomer(t *testing.T, db *gorm.DB, firstName, city, state string) *partner.Customer {
	t.Helper()

	customer, err := partner.NewCustomer(
		"TAX-"+firstName, firstName, "Tester",
		firstName+"@example.com", "1 Test St", city, state, "10001",
	)
	require.NoError(t, err)
	require.NoError(t, db.Create(customer).Error)
	return customer
}
