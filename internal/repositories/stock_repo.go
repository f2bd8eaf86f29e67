package repositories

import (
	"context"

	"stockroom/internal/models"
)

// StockRepository defines the interface for stock batch data access.
type StockRepository interface {
	List(ctx context.Context, page models.PageRequest) ([]models.Stock, int64, error)
	ListByProduct(ctx context.Context, productID string, quantity models.QuantityRange, page models.PageRequest) ([]models.Stock, int64, error)
	GetByID(ctx context.Context, id string) (*models.Stock, error)
	// AddToProduct creates the stock and appends it to the product in one transaction.
	AddToProduct(ctx context.Context, product *models.Product, stock *models.Stock) error
	// RemoveFromProduct detaches the stock from the product and deletes it in one transaction.
	RemoveFromProduct(ctx context.Context, product *models.Product, stockID string) error
}
