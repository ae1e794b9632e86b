package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/trade"
)

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo trade.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Create creates a new order. The order number, order date, line amounts and
// total are all server-generated; the repository validates the customer and
// every product reference before any row is written.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	order, err := trade.NewOrder(req.CustomerID)
	if err != nil {
		return nil, err
	}

	for _, line := range req.Details {
		if _, err := order.AddDetail(line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}

	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}
	order.OrderNumber = orderNumber

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// GetByID retrieves an order by ID with its customer and detail products
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// GetByOrderNumber retrieves an order by its business order number
func (s *OrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// List retrieves a page of orders
func (s *OrderService) List(ctx context.Context, limit, offset int) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// Update replaces the order's customer and detail set. Validation of every
// reference happens before a single row changes, so a failed update leaves
// the stored order intact.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	incoming := &trade.Order{CustomerID: req.CustomerID}
	for _, line := range req.Details {
		if _, err := incoming.AddDetail(line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}

	updated, err := s.orderRepo.UpdateByID(ctx, id, incoming)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(updated), nil
}

// Delete deletes an order and its details; returns false when the id does
// not exist
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.orderRepo.DeleteByID(ctx, id)
}
