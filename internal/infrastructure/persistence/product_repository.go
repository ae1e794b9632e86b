package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
	"github.com/oms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID with the category loaded
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll returns a page of products ordered by name
func (r *GormProductRepository) FindAll(ctx context.Context, limit, offset int) ([]catalog.Product, error) {
	limit, offset = shared.NormalizePage(limit, offset)

	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save persists a new product after verifying its category exists
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	if err := r.ensureCategoryExists(ctx, r.db, product.CategoryID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateByID loads the existing product, re-validates the category reference
// and overwrites the mutable fields
func (r *GormProductRepository) UpdateByID(ctx context.Context, id uuid.UUID, product *catalog.Product) (*catalog.Product, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.ensureCategoryExists(ctx, r.db, product.CategoryID); err != nil {
		return nil, err
	}

	if err := existing.Update(product.Name, product.Price, product.CategoryID); err != nil {
		return nil, err
	}

	// The category moved, drop the stale association before saving
	existing.Category = nil
	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// DeleteByID removes a product; returns false when the id does not exist
func (r *GormProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormProductRepository) ensureCategoryExists(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&catalog.Category{}).
		Where("id = ?", categoryID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.NewValidationError(fmt.Sprintf("Category with ID %s not found", categoryID))
	}
	return nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
