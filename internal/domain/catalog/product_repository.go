package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence.
// Save and UpdateByID verify the referenced category exists before any
// write and fail with a validation error when it does not.
type ProductRepository interface {
	// FindByID finds a product by its ID with the category loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll returns a page of products ordered by name
	FindAll(ctx context.Context, limit, offset int) ([]Product, error)

	// Save persists a new product
	Save(ctx context.Context, product *Product) error

	// UpdateByID loads the existing product and overwrites its fields
	UpdateByID(ctx context.Context, id uuid.UUID, product *Product) (*Product, error)

	// DeleteByID removes a product; returns false when the id does not exist
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
