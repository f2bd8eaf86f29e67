package repositories

import (
	"context"

	"stockroom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStockRepository is a GORM implementation of StockRepository.
type GORMStockRepository struct {
	db *gorm.DB
}

// NewGORMStockRepository creates a new instance of GORMStockRepository.
func NewGORMStockRepository(db *gorm.DB) *GORMStockRepository {
	return &GORMStockRepository{
		db: db,
	}
}

// List returns one page of all stock batches filtered on batch ID.
func (r *GORMStockRepository) List(ctx context.Context, page models.PageRequest) ([]models.Stock, int64, error) {
	return r.paginate(ctx, page, searchScope("stocks.batch_id", page.Search))
}

// ListByProduct returns one page of the product's stocks whose quantity lies in the range.
func (r *GORMStockRepository) ListByProduct(ctx context.Context, productID string, quantity models.QuantityRange, page models.PageRequest) ([]models.Stock, int64, error) {
	ofProduct := func(db *gorm.DB) *gorm.DB {
		db = db.Joins("JOIN product_stocks ON product_stocks.stock_id = stocks.id").
			Where("product_stocks.product_id = ?", productID)
		if quantity.Min != nil {
			db = db.Where("stocks.quantity >= ?", *quantity.Min)
		}
		if quantity.Max != nil {
			db = db.Where("stocks.quantity <= ?", *quantity.Max)
		}
		return db
	}
	return r.paginate(ctx, page, ofProduct, searchScope("stocks.batch_id", page.Search))
}

func (r *GORMStockRepository) paginate(ctx context.Context, page models.PageRequest, scopes ...func(*gorm.DB) *gorm.DB) ([]models.Stock, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Stock{}).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "failed to count stocks")
	}

	stocks := []models.Stock{}
	err := r.db.WithContext(ctx).
		Model(&models.Stock{}).
		Select("stocks.*").
		Scopes(scopes...).
		Order("stocks.created_at ASC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&stocks).Error
	if err != nil {
		return nil, 0, translate(err, "failed to list stocks")
	}
	return stocks, total, nil
}

// GetByID retrieves a stock batch by ID.
func (r *GORMStockRepository) GetByID(ctx context.Context, id string) (*models.Stock, error) {
	var stock models.Stock
	if err := r.db.WithContext(ctx).First(&stock, "id = ?", id).Error; err != nil {
		return nil, translate(err, "stock with ID %s", id)
	}
	return &stock, nil
}

// AddToProduct creates the stock and appends its reference to the product.
// On success product.Stocks includes the new batch.
func (r *GORMStockRepository) AddToProduct(ctx context.Context, product *models.Product, stock *models.Stock) error {
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(stock).Error; err != nil {
			return translate(err, "failed to create stock")
		}
		if err := tx.Model(product).Association("Stocks").Append(stock); err != nil {
			return translate(err, "failed to attach stock %s to product %s", stock.ID, product.ID)
		}
		return nil
	})
	return err
}

// RemoveFromProduct detaches the stock from the product, then deletes the stock record.
func (r *GORMStockRepository) RemoveFromProduct(ctx context.Context, product *models.Product, stockID string) error {
	stock := &models.Stock{ID: stockID}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(product).Association("Stocks").Delete(stock); err != nil {
			return translate(err, "failed to detach stock %s from product %s", stockID, product.ID)
		}
		if err := tx.Delete(stock).Error; err != nil {
			return translate(err, "failed to delete stock %s", stockID)
		}
		return nil
	})
}
