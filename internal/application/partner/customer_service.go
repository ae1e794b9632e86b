package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/partner"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(
		req.TaxID,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Address,
		req.City,
		req.State,
		req.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	if err := customer.SetContact(req.Phone, req.IdentityDocument); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// List retrieves a page of customers matching the optional city/state filters
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAllWithFilters(ctx, filter.Limit, filter.Offset, filter.City, filter.State)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// Update updates an existing customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	incoming := &partner.Customer{
		TaxID:            req.TaxID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		IdentityDocument: req.IdentityDocument,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
	}

	updated, err := s.customerRepo.UpdateByID(ctx, id, incoming)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(updated), nil
}

// Delete deletes a customer; returns false when the id does not exist
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.customerRepo.DeleteByID(ctx, id)
}
