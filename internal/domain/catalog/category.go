package catalog

import (
	"regexp"
	"time"

	"github.com/oms/backend/internal/domain/shared"
)

// categoryNamePattern allows letters (including accented), digits, spaces,
// ampersands and hyphens
var categoryNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ0-9\s&-]+$`)

// Category represents a product category
type Category struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null;index" json:"name"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name string) (*Category, error) {
	if err := ValidateCategoryName(name); err != nil {
		return nil, err
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Update overwrites the category's mutable fields
func (c *Category) Update(name string) error {
	if err := ValidateCategoryName(name); err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// ValidateCategoryName validates the category name
func ValidateCategoryName(name string) error {
	if name == "" {
		return shared.NewValidationError("Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewValidationError("Category name cannot exceed 100 characters")
	}
	if !categoryNamePattern.MatchString(name) {
		return shared.NewValidationError("Category name can only contain letters, numbers, spaces, & and - characters")
	}
	return nil
}
