package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
	"github.com/oms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns a page of categories ordered by name
func (r *GormCategoryRepository) FindAll(ctx context.Context, limit, offset int) ([]catalog.Category, error) {
	limit, offset = shared.NormalizePage(limit, offset)

	var categories []catalog.Category
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save persists a new category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// UpdateByID loads the existing category, overwrites its fields and persists
func (r *GormCategoryRepository) UpdateByID(ctx context.Context, id uuid.UUID, category *catalog.Category) (*catalog.Category, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.Update(category.Name); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteByID removes a category; returns false when the id does not exist
func (r *GormCategoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&catalog.Category{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
