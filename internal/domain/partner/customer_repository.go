package partner

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll returns a page of customers ordered by first name
	FindAll(ctx context.Context, limit, offset int) ([]Customer, error)

	// FindAllWithFilters returns a page of customers matching the optional
	// city/state filters (case-insensitive substring, combinable), ordered
	// by first name
	FindAllWithFilters(ctx context.Context, limit, offset int, city, state string) ([]Customer, error)

	// Save persists a new customer
	Save(ctx context.Context, customer *Customer) error

	// UpdateByID loads the existing customer and overwrites its fields
	UpdateByID(ctx context.Context, id uuid.UUID, customer *Customer) (*Customer, error)

	// DeleteByID removes a customer; returns false when the id does not exist
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
