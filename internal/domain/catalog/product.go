package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable product belonging to a category
type Product struct {
	shared.BaseEntity
	Name       string          `gorm:"type:varchar(200);not null;index" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product. Category existence is verified by the
// repository before persisting, not here.
func NewProduct(name string, price decimal.Decimal, categoryID uuid.UUID) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateProductPrice(price); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewValidationError("Category ID is required")
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
	}, nil
}

// Update overwrites the product's mutable fields
func (p *Product) Update(name string, price decimal.Decimal, categoryID uuid.UUID) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validateProductPrice(price); err != nil {
		return err
	}
	if categoryID == uuid.Nil {
		return shared.NewValidationError("Category ID is required")
	}
	p.Name = name
	p.Price = price
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Product name cannot exceed 200 characters")
	}
	return nil
}

func validateProductPrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewValidationError("Price must be greater than 0")
	}
	return nil
}
