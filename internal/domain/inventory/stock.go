package inventory

import (
	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
	"github.com/oms/backend/internal/domain/shared"
)

// Stock represents a stock lot for a product. Many stock rows may reference
// the same product. Timestamps are stamped by the repository on write and
// are never taken from client input.
type Stock struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`

	Product *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for GORM
func (Stock) TableName() string {
	return "stocks"
}

// NewStock creates a new stock lot. Product existence is verified by the
// repository before persisting.
func NewStock(productID uuid.UUID, quantity int) (*Stock, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID is required")
	}
	if quantity < 0 {
		return nil, shared.NewValidationError("Quantity must be at least 0")
	}
	return &Stock{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

// Mutate overwrites the only client-mutable fields
func (s *Stock) Mutate(productID uuid.UUID, quantity int) error {
	if productID == uuid.Nil {
		return shared.NewValidationError("Product ID is required")
	}
	if quantity < 0 {
		return shared.NewValidationError("Quantity must be at least 0")
	}
	s.ProductID = productID
	s.Quantity = quantity
	return nil
}
