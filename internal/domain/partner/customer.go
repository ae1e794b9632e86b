package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/oms/backend/internal/domain/shared"
)

var (
	namePattern       = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	phonePattern      = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	postalCodePattern = regexp.MustCompile(`^[0-9A-Za-z\s-]+$`)
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Customer represents a buyer that orders can reference
type Customer struct {
	shared.BaseEntity
	TaxID            string `gorm:"type:varchar(50);not null" json:"tax_id"`
	FirstName        string `gorm:"type:varchar(100);not null;index" json:"first_name"`
	LastName         string `gorm:"type:varchar(100);not null" json:"last_name"`
	IdentityDocument string `gorm:"type:varchar(50)" json:"identity_document,omitempty"`
	Phone            string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email            string `gorm:"type:varchar(200);not null" json:"email"`
	Address          string `gorm:"type:varchar(500);not null" json:"address"`
	City             string `gorm:"type:varchar(100);not null;index" json:"city"`
	State            string `gorm:"type:varchar(100);not null;index" json:"state"`
	PostalCode       string `gorm:"type:varchar(20);not null" json:"postal_code"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer after validating field formats
func NewCustomer(taxID, firstName, lastName, email, address, city, state, postalCode string) (*Customer, error) {
	c := &Customer{
		BaseEntity: shared.NewBaseEntity(),
		TaxID:      taxID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Address:    address,
		City:       city,
		State:      state,
		PostalCode: postalCode,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetContact sets the optional contact fields
func (c *Customer) SetContact(phone, identityDocument string) error {
	if phone != "" && !phonePattern.MatchString(phone) {
		return shared.NewValidationError("Invalid phone number format")
	}
	c.Phone = phone
	c.IdentityDocument = identityDocument
	return nil
}

// Update overwrites the customer's scalar fields from the incoming value
func (c *Customer) Update(in *Customer) error {
	if err := in.Validate(); err != nil {
		return err
	}
	c.TaxID = in.TaxID
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.IdentityDocument = in.IdentityDocument
	c.Phone = in.Phone
	c.Email = in.Email
	c.Address = in.Address
	c.City = in.City
	c.State = in.State
	c.PostalCode = in.PostalCode
	c.UpdatedAt = time.Now()
	return nil
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Validate checks the customer's field formats
func (c *Customer) Validate() error {
	switch {
	case c.TaxID == "":
		return shared.NewValidationError("Tax ID is required")
	case c.FirstName == "" || !namePattern.MatchString(c.FirstName):
		return shared.NewValidationError("First name can only contain letters and spaces")
	case c.LastName == "" || !namePattern.MatchString(c.LastName):
		return shared.NewValidationError("Last name can only contain letters and spaces")
	case c.Phone != "" && !phonePattern.MatchString(c.Phone):
		return shared.NewValidationError("Invalid phone number format")
	case c.Email == "" || !emailPattern.MatchString(c.Email):
		return shared.NewValidationError("Invalid email format")
	case c.Address == "":
		return shared.NewValidationError("Address is required")
	case c.City == "":
		return shared.NewValidationError("City is required")
	case c.State == "":
		return shared.NewValidationError("State is required")
	case c.PostalCode == "" || !postalCodePattern.MatchString(c.PostalCode):
		return shared.NewValidationError("Invalid postal code format")
	}
	return nil
}
