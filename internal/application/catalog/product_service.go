package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product. The repository rejects the write when the
// referenced category does not exist.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Price, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List retrieves a page of products
func (s *ProductService) List(ctx context.Context, limit, offset int) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	incoming := &catalog.Product{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	}
	updated, err := s.productRepo.UpdateByID(ctx, id, incoming)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(updated), nil
}

// Delete deletes a product; returns false when the id does not exist
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.productRepo.DeleteByID(ctx, id)
}
