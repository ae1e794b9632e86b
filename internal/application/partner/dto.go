package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/partner"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	TaxID            string `json:"tax_id" binding:"required,min=1,max=50"`
	FirstName        string `json:"first_name" binding:"required,personname,max=100"`
	LastName         string `json:"last_name" binding:"required,personname,max=100"`
	IdentityDocument string `json:"identity_document" binding:"max=50"`
	Phone            string `json:"phone" binding:"omitempty,phone,max=20"`
	Email            string `json:"email" binding:"required,email,max=200"`
	Address          string `json:"address" binding:"required,min=1,max=500"`
	City             string `json:"city" binding:"required,min=1,max=100"`
	State            string `json:"state" binding:"required,min=1,max=100"`
	PostalCode       string `json:"postal_code" binding:"required,min=1,max=20"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	TaxID            string `json:"tax_id" binding:"required,min=1,max=50"`
	FirstName        string `json:"first_name" binding:"required,personname,max=100"`
	LastName         string `json:"last_name" binding:"required,personname,max=100"`
	IdentityDocument string `json:"identity_document" binding:"max=50"`
	Phone            string `json:"phone" binding:"omitempty,phone,max=20"`
	Email            string `json:"email" binding:"required,email,max=200"`
	Address          string `json:"address" binding:"required,min=1,max=500"`
	City             string `json:"city" binding:"required,min=1,max=100"`
	State            string `json:"state" binding:"required,min=1,max=100"`
	PostalCode       string `json:"postal_code" binding:"required,min=1,max=20"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	City   string `form:"city"`
	State  string `form:"state"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID               uuid.UUID `json:"id"`
	TaxID            string    `json:"tax_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name"`
	IdentityDocument string    `json:"identity_document,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	PostalCode       string    `json:"postal_code"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:               c.ID,
		TaxID:            c.TaxID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		FullName:         c.FullName(),
		IdentityDocument: c.IdentityDocument,
		Phone:            c.Phone,
		Email:            c.Email,
		Address:          c.Address,
		City:             c.City,
		State:            c.State,
		PostalCode:       c.PostalCode,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain Customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *ToCustomerResponse(&customers[i])
	}
	return responses
}
