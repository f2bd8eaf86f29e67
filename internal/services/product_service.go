package services

import (
	"context"

	"stockroom/internal/models"
	"stockroom/internal/repositories"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductInput holds the writable fields of a product.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	ImageURL    string
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
	opts options
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, opts ...Option) *ProductService {
	return &ProductService{
		repo: repo,
		opts: buildOptions(opts),
	}
}

// ListProducts returns one page of products and the number matching the filter.
func (s *ProductService) ListProducts(ctx context.Context, page models.PageRequest) ([]models.Product, int64, error) {
	return s.repo.List(ctx, page)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct creates a new product with no stock.
func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	product := &models.Product{}
	in.applyTo(product)

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, productWriteError(err)
	}
	return product, nil
}

// UpdateProduct replaces all writable fields of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	in.applyTo(product)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, productWriteError(err)
	}
	return product, nil
}

// DeleteProduct deletes a product by ID; a missing product is not an error.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.opts.notify(ctx, EventProductDeleted, ProductEvent{ProductID: id})
	return nil
}

func (in ProductInput) applyTo(p *models.Product) {
	p.Name = in.Name
	p.Price = in.Price.Round(2)
	p.Description = in.Description
	p.ImageURL = in.ImageURL
}

func productWriteError(err error) error {
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return ErrProductExists
	}
	return err
}
