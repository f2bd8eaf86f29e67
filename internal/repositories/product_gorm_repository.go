package repositories

import (
	"context"

	"stockroom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func preloadStocks(db *gorm.DB) *gorm.DB {
	return db.Preload("Stocks", func(db *gorm.DB) *gorm.DB {
		return db.Order("stocks.created_at ASC")
	})
}

// List returns one page of products filtered on name, with their stocks.
func (r *GORMProductRepository) List(ctx context.Context, page models.PageRequest) ([]models.Product, int64, error) {
	var total int64
	filtered := r.db.WithContext(ctx).Model(&models.Product{}).Scopes(searchScope("name", page.Search))
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "failed to count products")
	}

	products := []models.Product{}
	err := r.db.WithContext(ctx).
		Scopes(searchScope("name", page.Search), preloadStocks).
		Order("created_at ASC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&products).Error
	if err != nil {
		return nil, 0, translate(err, "failed to list products")
	}
	for i := range products {
		normalizeStocks(&products[i])
	}
	return products, total, nil
}

// GetByID retrieves a single product and its stocks.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Scopes(preloadStocks).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err, "product with ID %s", id)
	}
	normalizeStocks(&product)
	return &product, nil
}

// Create creates a new product. Stock references are managed by StockRepository.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return translate(err, "failed to create product")
	}
	normalizeStocks(product)
	return nil
}

// Update overwrites the scalar columns of an existing product.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error; err != nil {
		return translate(err, "failed to update product %s", product.ID)
	}
	return nil
}

// Delete removes a product and its stock references. The stock records
// themselves are kept.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Select(clause.Associations).Delete(&models.Product{ID: id})
	if res.Error != nil {
		return translate(res.Error, "failed to delete product %s", id)
	}
	return nil
}

func normalizeStocks(p *models.Product) {
	if p.Stocks == nil {
		p.Stocks = []models.Stock{}
	}
}
