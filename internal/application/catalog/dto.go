package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a new category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductRequest represents a request to create a new product.
// The gt=0 tag on Price relies on dto.RegisterValidations having taught the
// binding validator how to read decimal values.
type CreateProductRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	Price      decimal.Decimal `json:"price" binding:"required,gt=0"`
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	Price      decimal.Decimal `json:"price" binding:"required,gt=0"`
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Price      decimal.Decimal   `json:"price"`
	CategoryID uuid.UUID         `json:"category_id"`
	Category   *CategoryResponse `json:"category,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain Categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCategoryResponse(&categories[i])
	}
	return responses
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Category != nil {
		resp.Category = ToCategoryResponse(p.Category)
	}
	return resp
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	return responses
}
