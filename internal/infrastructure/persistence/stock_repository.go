package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oms/backend/internal/domain/catalog"
	"github.com/oms/backend/internal/domain/inventory"
	"github.com/oms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// FindByID finds a stock lot by its ID with the product loaded
func (r *GormStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).
		Preload("Product").
		First(&stock, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindAll returns a page of stock lots ordered by creation time
func (r *GormStockRepository) FindAll(ctx context.Context, limit, offset int) ([]inventory.Stock, error) {
	limit, offset = shared.NormalizePage(limit, offset)

	var stocks []inventory.Stock
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByProductID returns a page of stock lots for one product
func (r *GormStockRepository) FindByProductID(ctx context.Context, productID uuid.UUID, limit, offset int) ([]inventory.Stock, error) {
	limit, offset = shared.NormalizePage(limit, offset)

	var stocks []inventory.Stock
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByProductIDAndStockID finds a stock lot scoped to a product
func (r *GormStockRepository) FindByProductIDAndStockID(ctx context.Context, productID, stockID uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND product_id = ?", stockID, productID).
		First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// ProductExists reports whether the product id resolves to a row
func (r *GormStockRepository) ProductExists(ctx context.Context, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("id = ?", productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// StockBelongsToProduct reports whether the stock lot references the product
func (r *GormStockRepository) StockBelongsToProduct(ctx context.Context, stockID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Stock{}).
		Where("id = ? AND product_id = ?", stockID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists a new stock lot after verifying the product exists.
// Both timestamps are stamped here, never taken from client input.
func (r *GormStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	if err := r.ensureProductExists(ctx, stock.ProductID); err != nil {
		return err
	}

	now := time.Now()
	stock.CreatedAt = now
	stock.UpdatedAt = now
	return r.db.WithContext(ctx).Create(stock).Error
}

// UpdateByID loads the existing lot and overwrites quantity and product.
// The product reference is re-validated only when it changed; updated_at is
// always re-stamped and created_at never changes.
func (r *GormStockRepository) UpdateByID(ctx context.Context, id uuid.UUID, stock *inventory.Stock) (*inventory.Stock, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if stock.ProductID != existing.ProductID {
		if err := r.ensureProductExists(ctx, stock.ProductID); err != nil {
			return nil, err
		}
	}

	if err := existing.Mutate(stock.ProductID, stock.Quantity); err != nil {
		return nil, err
	}
	existing.UpdatedAt = time.Now()

	existing.Product = nil
	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// DeleteByID removes a stock lot; returns false when the id does not exist
func (r *GormStockRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&inventory.Stock{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormStockRepository) ensureProductExists(ctx context.Context, productID uuid.UUID) error {
	exists, err := r.ProductExists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewValidationError(fmt.Sprintf("Product with ID %s not found", productID))
	}
	return nil
}

// Ensure GormStockRepository implements StockRepository
var _ inventory.StockRepository = (*GormStockRepository)(nil)
