package trade

import (
	"time"

	"github.com/google/uuid"
	appcatalog "github.com/oms/backend/internal/application/catalog"
	apppartner "github.com/oms/backend/internal/application/partner"
	"github.com/oms/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderDetailRequest represents one order line in a create/update request.
// The line amount is never accepted from the client; it is computed from the
// current product price at save time.
type OrderDetailRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	CustomerID uuid.UUID            `json:"customer_id" binding:"required"`
	Details    []OrderDetailRequest `json:"details" binding:"dive"`
}

// UpdateOrderRequest represents a request to update an order. The submitted
// detail set replaces the stored one wholesale.
type UpdateOrderRequest struct {
	CustomerID uuid.UUID            `json:"customer_id" binding:"required"`
	Details    []OrderDetailRequest `json:"details" binding:"dive"`
}

// OrderDetailResponse represents an order line in API responses
type OrderDetailResponse struct {
	ID        uuid.UUID                   `json:"id"`
	ProductID uuid.UUID                   `json:"product_id"`
	Quantity  int                         `json:"quantity"`
	Amount    decimal.Decimal             `json:"amount"`
	Product   *appcatalog.ProductResponse `json:"product,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          uuid.UUID                    `json:"id"`
	OrderNumber string                       `json:"order_number"`
	OrderDate   time.Time                    `json:"order_date"`
	Total       decimal.Decimal              `json:"total"`
	CustomerID  uuid.UUID                    `json:"customer_id"`
	Customer    *apppartner.CustomerResponse `json:"customer,omitempty"`
	Details     []OrderDetailResponse        `json:"details"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// ToOrderDetailResponse converts a domain OrderDetail to OrderDetailResponse
func ToOrderDetailResponse(d *trade.OrderDetail) OrderDetailResponse {
	resp := OrderDetailResponse{
		ID:        d.ID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		Amount:    d.Amount,
	}
	if d.Product != nil {
		resp.Product = appcatalog.ToProductResponse(d.Product)
	}
	return resp
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *trade.Order) *OrderResponse {
	details := make([]OrderDetailResponse, len(o.Details))
	for i := range o.Details {
		details[i] = ToOrderDetailResponse(&o.Details[i])
	}

	resp := &OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		OrderDate:   o.OrderDate,
		Total:       o.Total,
		CustomerID:  o.CustomerID,
		Details:     details,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.Customer != nil {
		resp.Customer = apppartner.ToCustomerResponse(o.Customer)
	}
	return resp
}

// ToOrderResponses converts a slice of domain Orders
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *ToOrderResponse(&orders[i])
	}
	return responses
}
