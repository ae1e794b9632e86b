package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStock(t *testing.T) {
	t.Run("creates stock lot", func(t *testing.T) {
		productID := uuid.New()

		stock, err := NewStock(productID, 25)

		require.NoError(t, err)
		assert.Equal(t, productID, stock.ProductID)
		assert.Equal(t, 25, stock.Quantity)
	})

	t.Run("accepts zero quantity", func(t *testing.T) {
		_, err := NewStock(uuid.New(), 0)
		assert.NoError(t, err)
	})

	t.Run("rejects nil product", func(t *testing.T) {
		_, err := NewStock(uuid.Nil, 10)

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewStock(uuid.New(), -1)

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})
}

func TestStock_Mutate(t *testing.T) {
	t.Run("overwrites product and quantity", func(t *testing.T) {
		stock, err := NewStock(uuid.New(), 5)
		require.NoError(t, err)

		newProduct := uuid.New()
		err = stock.Mutate(newProduct, 40)

		require.NoError(t, err)
		assert.Equal(t, newProduct, stock.ProductID)
		assert.Equal(t, 40, stock.Quantity)
	})

	t.Run("rejects negative quantity and keeps old values", func(t *testing.T) {
		stock, err := NewStock(uuid.New(), 5)
		require.NoError(t, err)

		err = stock.Mutate(stock.ProductID, -3)

		require.Error(t, err)
		assert.Equal(t, 5, stock.Quantity)
	})
}
