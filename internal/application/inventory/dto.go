package inventory

import (
	"time"

	"github.com/google/uuid"
	appcatalog "github.com/oms/backend/internal/application/catalog"
	"github.com/oms/backend/internal/domain/inventory"
)

// CreateStockRequest represents a request to create a new stock lot
type CreateStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  *int      `json:"quantity" binding:"required,min=0"`
}

// UpdateStockRequest represents a request to update a stock lot
type UpdateStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  *int      `json:"quantity" binding:"required,min=0"`
}

// StockResponse represents a stock lot in API responses
type StockResponse struct {
	ID        uuid.UUID                   `json:"id"`
	ProductID uuid.UUID                   `json:"product_id"`
	Quantity  int                         `json:"quantity"`
	Product   *appcatalog.ProductResponse `json:"product,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// ToStockResponse converts a domain Stock to StockResponse
func ToStockResponse(s *inventory.Stock) *StockResponse {
	resp := &StockResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Product != nil {
		resp.Product = appcatalog.ToProductResponse(s.Product)
	}
	return resp
}

// ToStockResponses converts a slice of domain Stocks
func ToStockResponses(stocks []inventory.Stock) []StockResponse {
	responses := make([]StockResponse, len(stocks))
	for i := range stocks {
		responses[i] = *ToStockResponse(&stocks[i])
	}
	return responses
}
