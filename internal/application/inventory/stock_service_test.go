package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
	dominventory "github.com/oms/backend/internal/domain/inventory"
	"github.com/oms/backend/internal/domain/shared"
	"github.com/oms/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStockService(t *testing.T) (*StockService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Category{}, &catalog.Product{}, &dominventory.Stock{}))

	return NewStockService(persistence.NewGormStockRepository(db)), db
}

func seedServiceProduct(t *testing.T, db *gorm.DB) *catalog.Product {
	t.Helper()

	category, err := catalog.NewCategory("Electronics")
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)

	product, err := catalog.NewProduct("Laptop", decimal.NewFromInt(999), category.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}

func intPtr(v int) *int { return &v }

func TestStockService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a lot under the product in the path", func(t *testing.T) {
		service, db := setupStockService(t)
		product := seedServiceProduct(t, db)

		resp, err := service.Create(ctx, product.ID, CreateStockRequest{
			ProductID: product.ID,
			Quantity:  intPtr(25),
		})

		require.NoError(t, err)
		assert.Equal(t, product.ID, resp.ProductID)
		assert.Equal(t, 25, resp.Quantity)
	})

	t.Run("rejects a body product that disagrees with the path", func(t *testing.T) {
		service, db := setupStockService(t)
		product := seedServiceProduct(t, db)

		_, err := service.Create(ctx, product.ID, CreateStockRequest{
			ProductID: uuid.New(),
			Quantity:  intPtr(25),
		})

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})
}

func TestStockService_ProductScoping(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByID reports an unknown product as not found", func(t *testing.T) {
		service, _ := setupStockService(t)

		_, err := service.GetByID(ctx, uuid.New(), uuid.New())

		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("ListByProduct reports an unknown product as not found", func(t *testing.T) {
		service, _ := setupStockService(t)

		_, err := service.ListByProduct(ctx, uuid.New(), 10, 0)

		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("Update refuses a lot that belongs to another product", func(t *testing.T) {
		service, db := setupStockService(t)
		product := seedServiceProduct(t, db)

		created, err := service.Create(ctx, product.ID, CreateStockRequest{
			ProductID: product.ID,
			Quantity:  intPtr(5),
		})
		require.NoError(t, err)

		_, err = service.Update(ctx, uuid.New(), created.ID, UpdateStockRequest{
			ProductID: product.ID,
			Quantity:  intPtr(10),
		})

		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("Delete returns false for a lot outside the product", func(t *testing.T) {
		service, db := setupStockService(t)
		product := seedServiceProduct(t, db)

		created, err := service.Create(ctx, product.ID, CreateStockRequest{
			ProductID: product.ID,
			Quantity:  intPtr(5),
		})
		require.NoError(t, err)

		deleted, err := service.Delete(ctx, uuid.New(), created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = service.Delete(ctx, product.ID, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}
