package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
	"github.com/oms/backend/internal/domain/partner"
	"github.com/oms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Order is the aggregate root of the order/detail pair. Total and the
// per-line amounts are always server-computed from the current product
// prices; the order date is server-assigned at creation.
type Order struct {
	shared.BaseEntity
	OrderNumber string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	OrderDate   time.Time       `gorm:"not null;index" json:"order_date"`
	Total       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`

	Customer *partner.Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Details  []OrderDetail     `gorm:"foreignKey:OrderID" json:"details"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderDetail is a single line of an order. Belongs to exactly one order
// and references exactly one product.
type OrderDetail struct {
	shared.BaseEntity
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`

	Product *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for GORM
func (OrderDetail) TableName() string {
	return "order_details"
}

// NewOrder creates a new order shell for the given customer. Details are
// added with AddDetail; amounts and the total are computed by the
// repository at save time from current product prices.
func NewOrder(customerID uuid.UUID) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Customer ID is required")
	}
	return &Order{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Total:      decimal.Zero,
	}, nil
}

// AddDetail appends a detail line referencing a product
func (o *Order) AddDetail(productID uuid.UUID, quantity int) (*OrderDetail, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID is required")
	}
	if quantity < 1 {
		return nil, shared.NewValidationError("Quantity must be at least 1")
	}
	detail := OrderDetail{
		BaseEntity: shared.NewBaseEntity(),
		Quantity:   quantity,
		OrderID:    o.ID,
		ProductID:  productID,
	}
	o.Details = append(o.Details, detail)
	return &o.Details[len(o.Details)-1], nil
}

// PriceLine computes the line amount from a resolved product price
func PriceLine(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
