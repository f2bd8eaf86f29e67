package services

import (
	"context"

	"stockroom/internal/models"
	"stockroom/internal/repositories"
)

// StockService handles stock batches and their attachment to products.
type StockService struct {
	stockRepo repositories.StockRepository
	products  *ProductService
	opts      options
}

// NewStockService creates a new StockService.
func NewStockService(stockRepo repositories.StockRepository, productRepo repositories.ProductRepository, opts ...Option) *StockService {
	return &StockService{
		stockRepo: stockRepo,
		products:  NewProductService(productRepo, opts...),
		opts:      buildOptions(opts),
	}
}

// ListStocks returns one page of all stock batches.
func (s *StockService) ListStocks(ctx context.Context, page models.PageRequest) ([]models.Stock, int64, error) {
	return s.stockRepo.List(ctx, page)
}

// ListProductStocks returns one page of a product's stocks within the quantity range.
func (s *StockService) ListProductStocks(ctx context.Context, productID string, quantity models.QuantityRange, page models.PageRequest) ([]models.Stock, int64, error) {
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return nil, 0, err
	}
	return s.stockRepo.ListByProduct(ctx, productID, quantity, page)
}

// AddStock records a new batch of quantity units and appends it to the
// product. It returns the product with its updated stock list.
func (s *StockService) AddStock(ctx context.Context, productID string, quantity int) (*models.Product, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	batchID, err := NewBatchID()
	if err != nil {
		return nil, err
	}
	stock := &models.Stock{BatchID: batchID, Quantity: quantity}
	if err := s.stockRepo.AddToProduct(ctx, product, stock); err != nil {
		return nil, err
	}

	s.opts.notify(ctx, EventStockAdded, StockEvent{
		ProductID: product.ID,
		StockID:   stock.ID,
		BatchID:   stock.BatchID,
		Quantity:  stock.Quantity,
	})
	return s.products.GetProduct(ctx, productID)
}

// RemoveStock detaches a stock batch from its product and deletes it.
// The stock must be referenced by the product.
func (s *StockService) RemoveStock(ctx context.Context, productID, stockID string) (*models.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var removed models.Stock
	for _, st := range product.Stocks {
		if st.ID == stockID {
			removed = st
		}
	}
	if removed.ID == "" {
		return nil, ErrStockNotInProduct
	}

	if err := s.stockRepo.RemoveFromProduct(ctx, product, stockID); err != nil {
		return nil, err
	}

	s.opts.notify(ctx, EventStockRemoved, StockEvent{
		ProductID: product.ID,
		StockID:   removed.ID,
		BatchID:   removed.BatchID,
		Quantity:  removed.Quantity,
	})
	return s.products.GetProduct(ctx, productID)
}
