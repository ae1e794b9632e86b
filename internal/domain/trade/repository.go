package trade

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence. Save and
// UpdateByID validate the customer and every detail's product before any
// write, recompute all amounts and the total from current product prices,
// and persist the order with its detail lines in one transaction. Reads
// eagerly load the customer and each detail's product so callers never see
// a partially populated graph.
type OrderRepository interface {
	// FindByID finds an order by ID with customer and details.product loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its business order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll returns a page of orders ordered by order date
	FindAll(ctx context.Context, limit, offset int) ([]Order, error)

	// Save validates, computes amounts/total, stamps the order date and
	// persists the order with its details atomically
	Save(ctx context.Context, order *Order) error

	// UpdateByID validates everything first, then replaces the detail set
	// wholesale inside one transaction. A failed validation leaves the
	// stored order untouched.
	UpdateByID(ctx context.Context, id uuid.UUID, order *Order) (*Order, error)

	// DeleteByID removes an order and its details; returns false when the
	// id does not exist
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)

	// GenerateOrderNumber produces the next unique order number
	GenerateOrderNumber(ctx context.Context) (string, error)
}
