package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// List retrieves a page of categories
func (s *CategoryService) List(ctx context.Context, limit, offset int) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// Update updates an existing category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	incoming := &catalog.Category{Name: req.Name}
	updated, err := s.categoryRepo.UpdateByID(ctx, id, incoming)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(updated), nil
}

// Delete deletes a category; returns false when the id does not exist
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.categoryRepo.DeleteByID(ctx, id)
}
