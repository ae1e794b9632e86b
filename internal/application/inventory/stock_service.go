package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/inventory"
	"github.com/oms/backend/internal/domain/shared"
)

// StockService handles stock-related business operations. Mutations reached
// through product-scoped routes verify the lot actually belongs to the
// product in the path before touching it.
type StockService struct {
	stockRepo inventory.StockRepository
}

// NewStockService creates a new StockService
func NewStockService(stockRepo inventory.StockRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

// Create creates a new stock lot under the product in the path. The path
// product and the body product must agree.
func (s *StockService) Create(ctx context.Context, productID uuid.UUID, req CreateStockRequest) (*StockResponse, error) {
	if req.ProductID != productID {
		return nil, shared.NewValidationError("Product ID in body does not match product in path")
	}

	stock, err := inventory.NewStock(req.ProductID, *req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}

	return ToStockResponse(stock), nil
}

// GetByID retrieves a stock lot scoped to a product
func (s *StockService) GetByID(ctx context.Context, productID, stockID uuid.UUID) (*StockResponse, error) {
	if err := s.ensureProductExists(ctx, productID); err != nil {
		return nil, err
	}

	stock, err := s.stockRepo.FindByProductIDAndStockID(ctx, productID, stockID)
	if err != nil {
		return nil, err
	}
	return ToStockResponse(stock), nil
}

// ListByProduct retrieves a page of stock lots for a product
func (s *StockService) ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]StockResponse, error) {
	if err := s.ensureProductExists(ctx, productID); err != nil {
		return nil, err
	}

	stocks, err := s.stockRepo.FindByProductID(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return ToStockResponses(stocks), nil
}

// Update updates a stock lot scoped to a product
func (s *StockService) Update(ctx context.Context, productID, stockID uuid.UUID, req UpdateStockRequest) (*StockResponse, error) {
	if err := s.ensureStockBelongsToProduct(ctx, stockID, productID); err != nil {
		return nil, err
	}

	incoming := &inventory.Stock{
		ProductID: req.ProductID,
		Quantity:  *req.Quantity,
	}

	updated, err := s.stockRepo.UpdateByID(ctx, stockID, incoming)
	if err != nil {
		return nil, err
	}
	return ToStockResponse(updated), nil
}

// Delete deletes a stock lot scoped to a product; returns false when the lot
// does not exist under that product
func (s *StockService) Delete(ctx context.Context, productID, stockID uuid.UUID) (bool, error) {
	belongs, err := s.stockRepo.StockBelongsToProduct(ctx, stockID, productID)
	if err != nil {
		return false, err
	}
	if !belongs {
		return false, nil
	}
	return s.stockRepo.DeleteByID(ctx, stockID)
}

func (s *StockService) ensureProductExists(ctx context.Context, productID uuid.UUID) error {
	exists, err := s.stockRepo.ProductExists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewDomainError(shared.CodeNotFound, fmt.Sprintf("Product with ID %s not found", productID))
	}
	return nil
}

func (s *StockService) ensureStockBelongsToProduct(ctx context.Context, stockID, productID uuid.UUID) error {
	belongs, err := s.stockRepo.StockBelongsToProduct(ctx, stockID, productID)
	if err != nil {
		return err
	}
	if !belongs {
		return shared.ErrNotFound
	}
	return nil
}
