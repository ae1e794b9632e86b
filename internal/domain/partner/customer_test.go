package partner

import (
	"testing"

	"github.com/oms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer(t *testing.T) *Customer {
	t.Helper()
	c, err := NewCustomer("TAX123", "Maria", "Lopez", "maria@example.com", "123 Main St", "Springfield", "Oregon", "97477")
	require.NoError(t, err)
	return c
}

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with valid fields", func(t *testing.T) {
		c := validCustomer(t)

		assert.Equal(t, "TAX123", c.TaxID)
		assert.Equal(t, "Maria", c.FirstName)
		assert.Equal(t, "Springfield", c.City)
		assert.NotEqual(t, "", c.ID.String())
	})

	t.Run("accepts accented names", func(t *testing.T) {
		_, err := NewCustomer("TAX123", "José", "Muñoz", "jose@example.com", "Calle Mayor 1", "Sevilla", "Andalucía", "41001")
		assert.NoError(t, err)
	})

	t.Run("rejects missing tax id", func(t *testing.T) {
		_, err := NewCustomer("", "Maria", "Lopez", "maria@example.com", "123 Main St", "Springfield", "Oregon", "97477")

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects numeric first name", func(t *testing.T) {
		_, err := NewCustomer("TAX123", "Maria2", "Lopez", "maria@example.com", "123 Main St", "Springfield", "Oregon", "97477")

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "a@b", "two@@example.com"} {
			_, err := NewCustomer("TAX123", "Maria", "Lopez", email, "123 Main St", "Springfield", "Oregon", "97477")
			assert.Error(t, err, email)
		}
	})

	t.Run("rejects malformed postal code", func(t *testing.T) {
		_, err := NewCustomer("TAX123", "Maria", "Lopez", "maria@example.com", "123 Main St", "Springfield", "Oregon", "974!77")

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})
}

func TestCustomer_SetContact(t *testing.T) {
	t.Run("accepts e164 phone", func(t *testing.T) {
		c := validCustomer(t)

		err := c.SetContact("+15415550123", "DOC-99")

		require.NoError(t, err)
		assert.Equal(t, "+15415550123", c.Phone)
		assert.Equal(t, "DOC-99", c.IdentityDocument)
	})

	t.Run("accepts empty phone", func(t *testing.T) {
		c := validCustomer(t)

		err := c.SetContact("", "")

		assert.NoError(t, err)
	})

	t.Run("rejects malformed phone", func(t *testing.T) {
		c := validCustomer(t)

		err := c.SetContact("0123", "")

		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
		assert.Equal(t, "", c.Phone)
	})
}

func TestCustomer_Update(t *testing.T) {
	t.Run("overwrites scalar fields", func(t *testing.T) {
		c := validCustomer(t)
		in := &Customer{
			TaxID:      "TAX456",
			FirstName:  "Ana",
			LastName:   "Silva",
			Email:      "ana@example.com",
			Address:    "456 Oak Ave",
			City:       "Portland",
			State:      "Oregon",
			PostalCode: "97201",
		}

		err := c.Update(in)

		require.NoError(t, err)
		assert.Equal(t, "Ana", c.FirstName)
		assert.Equal(t, "Portland", c.City)
	})

	t.Run("rejects invalid incoming customer and keeps old fields", func(t *testing.T) {
		c := validCustomer(t)
		in := &Customer{TaxID: "TAX456"}

		err := c.Update(in)

		require.Error(t, err)
		assert.Equal(t, "Maria", c.FirstName)
	})
}

func TestCustomer_FullName(t *testing.T) {
	c := validCustomer(t)
	assert.Equal(t, "Maria Lopez", c.FullName())
}
