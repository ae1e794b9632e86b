package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base contract implemented by every entity repository.
// FindAll pages through entities with limit/offset and a stable per-entity
// ordering; it deliberately returns no total count, so callers cannot derive
// a page count from a single call.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, limit, offset int) ([]T, error)
	Save(ctx context.Context, entity *T) error
	UpdateByID(ctx context.Context, id uuid.UUID, entity *T) (*T, error)
	// DeleteByID returns false (not an error) when the id does not exist,
	// letting the caller distinguish "nothing to delete" from a failure.
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

const (
	// DefaultLimit is applied when a caller passes a non-positive limit
	DefaultLimit = 10
	// MaxLimit caps a single page
	MaxLimit = 100
)

// NormalizePage clamps limit/offset to sane values
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
