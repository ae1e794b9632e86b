package inventory

import (
	"context"

	"github.com/google/uuid"
)

// StockRepository defines the interface for stock persistence.
// Save verifies the referenced product exists and stamps both timestamps;
// UpdateByID re-validates the product only when the reference changes and
// always re-stamps updated_at.
type StockRepository interface {
	// FindByID finds a stock lot by its ID with the product loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Stock, error)

	// FindAll returns a page of stock lots ordered by creation time
	FindAll(ctx context.Context, limit, offset int) ([]Stock, error)

	// FindByProductID returns a page of stock lots for one product
	FindByProductID(ctx context.Context, productID uuid.UUID, limit, offset int) ([]Stock, error)

	// FindByProductIDAndStockID finds a stock lot scoped to a product
	FindByProductIDAndStockID(ctx context.Context, productID, stockID uuid.UUID) (*Stock, error)

	// ProductExists reports whether the product id resolves to a row
	ProductExists(ctx context.Context, productID uuid.UUID) (bool, error)

	// StockBelongsToProduct reports whether the stock lot references the
	// given product. Mandatory before any mutation reached through a
	// product-scoped route.
	StockBelongsToProduct(ctx context.Context, stockID, productID uuid.UUID) (bool, error)

	// Save persists a new stock lot
	Save(ctx context.Context, stock *Stock) error

	// UpdateByID loads the existing lot and overwrites quantity and product
	UpdateByID(ctx context.Context, id uuid.UUID, stock *Stock) (*Stock, error)

	// DeleteByID removes a stock lot; returns false when the id does not exist
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
