package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name          string
		limit, offset int
		wantL, wantO  int
	}{
		{"defaults applied", 0, 0, DefaultLimit, 0},
		{"negative limit falls back", -5, 0, DefaultLimit, 0},
		{"limit capped", 500, 0, MaxLimit, 0},
		{"negative offset clamped", 20, -1, 20, 0},
		{"valid values pass through", 20, 40, 20, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := NormalizePage(tc.limit, tc.offset)
			assert.Equal(t, tc.wantL, limit)
			assert.Equal(t, tc.wantO, offset)
		})
	}
}

func TestErrorClassification(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrNotFound))
		assert.False(t, IsValidation(ErrNotFound))
	})

	t.Run("validation", func(t *testing.T) {
		err := NewValidationError("bad input")
		assert.True(t, IsValidation(err))
		assert.False(t, IsNotFound(err))
		assert.Equal(t, "bad input", err.Error())
	})

	t.Run("plain errors are neither", func(t *testing.T) {
		assert.False(t, IsNotFound(assert.AnError))
		assert.False(t, IsValidation(assert.AnError))
	})
}
