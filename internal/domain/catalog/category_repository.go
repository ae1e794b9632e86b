package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAll returns a page of categories ordered by name
	FindAll(ctx context.Context, limit, offset int) ([]Category, error)

	// Save persists a new category
	Save(ctx context.Context, category *Category) error

	// UpdateByID loads the existing category and overwrites its fields
	UpdateByID(ctx context.Context, id uuid.UUID, category *Category) (*Category, error)

	// DeleteByID removes a category; returns false when the id does not exist
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
