package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
	"github.com/oms/backend/internal/domain/partner"
	"github.com/oms/backend/internal/domain/shared"
	"github.com/oms/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID with the customer and detail products loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		Preload("Details.Product").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByOrderNumber finds an order by its business order number
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		Preload("Details.Product").
		First(&order, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll returns a page of orders ordered by order date, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context, limit, offset int) ([]trade.Order, error) {
	limit, offset = shared.NormalizePage(limit, offset)

	var orders []trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		Preload("Details.Product").
		Order("order_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save validates the customer and every detail's product, computes each line
// amount and the total from current product prices, stamps the order date and
// persists the order with its details in one transaction. A failed validation
// writes nothing.
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCustomerExists(tx, order.CustomerID); err != nil {
			return err
		}

		total := decimal.Zero
		for i := range order.Details {
			detail := &order.Details[i]
			product, err := resolveProduct(tx, detail.ProductID)
			if err != nil {
				return err
			}
			detail.OrderID = order.ID
			detail.Amount = trade.PriceLine(product.Price, detail.Quantity)
			total = total.Add(detail.Amount)
		}
		order.Total = total
		order.OrderDate = time.Now()

		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		if len(order.Details) > 0 {
			if err := tx.Create(&order.Details).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	loaded, err := r.FindByID(ctx, order.ID)
	if err != nil {
		return err
	}
	*order = *loaded
	return nil
}

// UpdateByID validates the customer and every incoming detail's product
// before touching a single row, then replaces the stored detail set wholesale
// and recomputes the total, all inside one transaction
func (r *GormOrderRepository) UpdateByID(ctx context.Context, id uuid.UUID, order *trade.Order) (*trade.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing trade.Order
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := ensureCustomerExists(tx, order.CustomerID); err != nil {
			return err
		}

		details := make([]trade.OrderDetail, len(order.Details))
		total := decimal.Zero
		for i := range order.Details {
			product, err := resolveProduct(tx, order.Details[i].ProductID)
			if err != nil {
				return err
			}
			detail := order.Details[i]
			if detail.ID == uuid.Nil {
				detail.BaseEntity = shared.NewBaseEntity()
			}
			detail.OrderID = existing.ID
			detail.Amount = trade.PriceLine(product.Price, detail.Quantity)
			total = total.Add(detail.Amount)
			details[i] = detail
		}

		existing.CustomerID = order.CustomerID
		existing.Total = total
		if !order.OrderDate.IsZero() {
			existing.OrderDate = order.OrderDate
		}
		existing.UpdatedAt = time.Now()

		// Everything validated; now destroy and rebuild the detail set
		if err := tx.Where("order_id = ?", existing.ID).Delete(&trade.OrderDetail{}).Error; err != nil {
			return err
		}
		if len(details) > 0 {
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(&existing).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// DeleteByID removes an order and its details; returns false when the id
// does not exist
func (r *GormOrderRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing trade.Order
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("order_id = ?", existing.ID).Delete(&trade.OrderDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// GenerateOrderNumber produces the next order number of the form
// ORD-YYYY-NNNNN, where the sequence restarts each year
func (r *GormOrderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("ORD-%d-", time.Now().Year())

	var last string
	err := r.db.WithContext(ctx).
		Model(&trade.Order{}).
		Where("order_number LIKE ?", prefix+"%").
		Order("order_number DESC").
		Limit(1).
		Pluck("order_number", &last).Error
	if err != nil {
		return "", err
	}

	sequence := 1
	if last != "" {
		if _, err := fmt.Sscanf(last, prefix+"%d", &sequence); err == nil {
			sequence++
		}
	}
	return fmt.Sprintf("%s%05d", prefix, sequence), nil
}

func ensureCustomerExists(tx *gorm.DB, customerID uuid.UUID) error {
	var count int64
	if err := tx.Model(&partner.Customer{}).
		Where("id = ?", customerID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.NewValidationError(fmt.Sprintf("Customer with ID %s not found", customerID))
	}
	return nil
}

func resolveProduct(tx *gorm.DB, productID uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := tx.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewValidationError(fmt.Sprintf("Product with ID %s not found", productID))
		}
		return nil, err
	}
	return &product, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
