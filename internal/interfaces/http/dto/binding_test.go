package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidations(t *testing.T) {
	require.NoError(t, RegisterValidations())
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	t.Run("decimal fields honour numeric tags", func(t *testing.T) {
		type form struct {
			Price decimal.Decimal `binding:"required,gt=0"`
		}

		assert.NoError(t, v.Struct(form{Price: decimal.NewFromFloat(2.50)}))
		assert.Error(t, v.Struct(form{Price: decimal.Zero}))
		assert.Error(t, v.Struct(form{Price: decimal.NewFromInt(-1)}))
	})

	t.Run("phone tag", func(t *testing.T) {
		type form struct {
			Phone string `binding:"omitempty,phone"`
		}

		assert.NoError(t, v.Struct(form{Phone: "+15415550123"}))
		assert.NoError(t, v.Struct(form{}))
		assert.Error(t, v.Struct(form{Phone: "0123"}))
		assert.Error(t, v.Struct(form{Phone: "not-a-phone"}))
	})

	t.Run("personname tag", func(t *testing.T) {
		type form struct {
			Name string `binding:"personname"`
		}

		assert.NoError(t, v.Struct(form{Name: "María José"}))
		assert.Error(t, v.Struct(form{Name: "R2D2"}))
	})
}
