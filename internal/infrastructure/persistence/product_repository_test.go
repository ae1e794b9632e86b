package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
	"github.com/oms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Save persists and FindByID loads the category", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)
		category := seedCategory(t, db, "Electronics")

		product, err := catalog.NewProduct("Laptop", decimal.NewFromFloat(999.99), category.ID)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Laptop", found.Name)
		require.NotNil(t, found.Category)
		assert.Equal(t, "Electronics", found.Category.Name)
	})

	t.Run("Save rejects a missing category", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)

		product, err := catalog.NewProduct("Laptop", decimal.NewFromInt(100), uuid.New())
		require.NoError(t, err)

		err = repo.Save(ctx, product)

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))

		var count int64
		require.NoError(t, db.Model(&catalog.Product{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("FindAll orders by name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)
		category := seedCategory(t, db, "Electronics")
		seedProduct(t, db, category, "Tablet", "199.00")
		seedProduct(t, db, category, "Camera", "349.00")

		products, err := repo.FindAll(ctx, 10, 0)

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Camera", products[0].Name)
		assert.Equal(t, "Tablet", products[1].Name)
	})

	t.Run("UpdateByID moves the product to another category", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)
		oldCategory := seedCategory(t, db, "Electronics")
		newCategory := seedCategory(t, db, "Office")
		product := seedProduct(t, db, oldCategory, "Monitor", "150.00")

		updated, err := repo.UpdateByID(ctx, product.ID, &catalog.Product{
			Name:       "Monitor HD",
			Price:      decimal.NewFromFloat(175.50),
			CategoryID: newCategory.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, "Monitor HD", updated.Name)
		assert.True(t, updated.Price.Equal(decimal.NewFromFloat(175.50)))
		require.NotNil(t, updated.Category)
		assert.Equal(t, "Office", updated.Category.Name)
	})

	t.Run("UpdateByID rejects a missing category without writing", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)
		category := seedCategory(t, db, "Electronics")
		product := seedProduct(t, db, category, "Monitor", "150.00")

		_, err := repo.UpdateByID(ctx, product.ID, &catalog.Product{
			Name:       "Monitor HD",
			Price:      decimal.NewFromInt(175),
			CategoryID: uuid.New(),
		})

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))

		stored, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Monitor", stored.Name)
	})

	t.Run("DeleteByID reports whether a row was removed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)
		category := seedCategory(t, db, "Electronics")
		product := seedProduct(t, db, category, "Monitor", "150.00")

		deleted, err := repo.DeleteByID(ctx, product.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.DeleteByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
