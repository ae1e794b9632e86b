package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/inventory"
	"github.com/oms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStockRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Save stamps both timestamps server-side", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormStockRepository(db)
		category := seedCategory(t, db, "Electronics")
		product := seedProduct(t, db, category, "Laptop", "999.99")

		stock, err := inventory.NewStock(product.ID, 25)
		require.NoError(t, err)
		// whatever the client sent must be ignored
		stale := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		stock.CreatedAt = stale
		stock.UpdatedAt = stale

		before := time.Now()
		require.NoError(t, repo.Save(ctx, stock))

		assert.False(t, stock.CreatedAt.Before(before))
		assert.False(t, stock.UpdatedAt.Before(before))
	})

	t.Run("Save rejects a missing product", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormStockRepository(db)

		stock, err := inventory.NewStock(uuid.New(), 10)
		require.NoError(t, err)

		err = repo.Save(ctx, stock)

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("FindByProductID returns only that product's lots", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormStockRepository(db)
		category := seedCategory(t, db, "Electronics")
		laptop := seedProduct(t, db, category, "Laptop", "999.99")
		tablet := seedProduct(t, db, category, "Tablet", "199.00")

		for _, qty := range []int{5, 10} {
			stock, err := inventory.NewStock(laptop.ID, qty)
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, stock))
		}
		other, err := inventory.NewStock(tablet.ID, 3)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, other))

		stocks, err := repo.FindByProductID(ctx, laptop.ID, 10, 0)

		require.NoError(t, err)
		require.Len(t, stocks, 2)
		for _, s := range stocks {
			assert.Equal(t, laptop.ID, s.ProductID)
			require.NotNil(t, s.Product)
			assert.Equal(t, "Laptop", s.Product.Name)
		}
	})

	t.Run("FindByProductIDAndStockID scopes the lookup", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormStockRepository(db)
		category := seedCategory(t, db, "Electronics")
		laptop := seedProduct(t, db, category, "Laptop", "999.99")
		tablet := seedProduct(t, db, category, "Tablet", "199.00")

		stock, err := inventory.NewStock(laptop.ID, 5)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, stock))

		found, err := repo.FindByProductIDAndStockID(ctx, laptop.ID, stock.ID)
		require.NoError(t, err)
		assert.Equal(t, stock.ID, found.ID)

		_, err = repo.FindByProductIDAndStockID(ctx, tablet.ID, stock.ID)
		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("UpdateByID re-stamps updated_at and keeps created_at", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormStockRepository(db)
		category := seedCategory(t, db, "Electronics")
		product := seedProduct(t, db, category, "Laptop", "999.99")

		stock, err := inventory.NewStock(product.ID, 5)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, stock))
		createdAt := stock.CreatedAt

		time.Sleep(10 * time.Millisecond)
		updated, err := repo.UpdateByID(ctx, stock.ID, &inventory.Stock{
			ProductID: product.ID,
			Quantity:  40,
		})

		require.NoError(t, err)
		assert.Equal(t, 40, updated.Quantity)
		assert.WithinDuration(t, createdAt, updated.CreatedAt, time.Second)
		assert.True(t, updated.UpdatedAt.After(createdAt))
	})

	t.Run("UpdateByID validates the product only when it changed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormStockRepository(db)
		category := seedCategory(t, db, "Electronics")
		product := seedProduct(t, db, category, "Laptop", "999.99")

		stock, err := inventory.NewStock(product.ID, 5)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, stock))

		_, err = repo.UpdateByID(ctx, stock.ID, &inventory.Stock{
			ProductID: uuid.New(),
			Quantity:  5,
		})

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))

		stored, err := repo.FindByID(ctx, stock.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, stored.ProductID)
	})

	t.Run("ProductExists and StockBelongsToProduct", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormStockRepository(db)
		category := seedCategory(t, db, "Electronics")
		laptop := seedProduct(t, db, category, "Laptop", "999.99")
		tablet := seedProduct(t, db, category, "Tablet", "199.00")

		stock, err := inventory.NewStock(laptop.ID, 5)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, stock))

		exists, err := repo.ProductExists(ctx, laptop.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ProductExists(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, exists)

		belongs, err := repo.StockBelongsToProduct(ctx, stock.ID, laptop.ID)
		require.NoError(t, err)
		assert.True(t, belongs)

		belongs, err = repo.StockBelongsToProduct(ctx, stock.ID, tablet.ID)
		require.NoError(t, err)
		assert.False(t, belongs)
	})

	t.Run("DeleteByID reports whether a row was removed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormStockRepository(db)
		category := seedCategory(t, db, "Electronics")
		product := seedProduct(t, db, category, "Laptop", "999.99")

		stock, err := inventory.NewStock(product.ID, 5)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, stock))

		deleted, err := repo.DeleteByID(ctx, stock.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.DeleteByID(ctx, stock.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
