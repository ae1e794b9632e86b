package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/partner"
	"github.com/oms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAll returns a page of customers ordered by first name
func (r *GormCustomerRepository) FindAll(ctx context.Context, limit, offset int) ([]partner.Customer, error) {
	return r.FindAllWithFilters(ctx, limit, offset, "", "")
}

// FindAllWithFilters returns a page of customers matching the optional
// city/state filters. Both filters match case-insensitive substrings and
// combine with AND when both are present.
func (r *GormCustomerRepository) FindAllWithFilters(ctx context.Context, limit, offset int, city, state string) ([]partner.Customer, error) {
	limit, offset = shared.NormalizePage(limit, offset)

	query := r.db.WithContext(ctx).Model(&partner.Customer{})
	if city != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	if state != "" {
		query = query.Where("LOWER(state) LIKE ?", "%"+strings.ToLower(state)+"%")
	}

	var customers []partner.Customer
	if err := query.
		Order("first_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Save persists a new customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// UpdateByID loads the existing customer and overwrites its fields
func (r *GormCustomerRepository) UpdateByID(ctx context.Context, id uuid.UUID, customer *partner.Customer) (*partner.Customer, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.Update(customer); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteByID removes a customer; returns false when the id does not exist
func (r *GormCustomerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&partner.Customer{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
