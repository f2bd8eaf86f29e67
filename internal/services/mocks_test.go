package services_test

import (
	"context"
	"time"

	"stockroom/internal/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, page models.PageRequest) ([]models.User, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, page models.PageRequest) ([]models.Product, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStockRepository is a mock implementation of repositories.StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) List(ctx context.Context, page models.PageRequest) ([]models.Stock, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Stock), args.Get(1).(int64), args.Error(2)
}

func (m *MockStockRepository) ListByProduct(ctx context.Context, productID string, quantity models.QuantityRange, page models.PageRequest) ([]models.Stock, int64, error) {
	args := m.Called(ctx, productID, quantity, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Stock), args.Get(1).(int64), args.Error(2)
}

func (m *MockStockRepository) GetByID(ctx context.Context, id string) (*models.Stock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stock), args.Error(1)
}

func (m *MockStockRepository) AddToProduct(ctx context.Context, product *models.Product, stock *models.Stock) error {
	args := m.Called(ctx, product, stock)
	return args.Error(0)
}

func (m *MockStockRepository) RemoveFromProduct(ctx context.Context, product *models.Product, stockID string) error {
	args := m.Called(ctx, product, stockID)
	return args.Error(0)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

// memoryDenylist is an in-process services.TokenDenylist.
type memoryDenylist struct {
	revoked map[string]time.Duration
}

func newMemoryDenylist() *memoryDenylist {
	return &memoryDenylist{revoked: map[string]time.Duration{}}
}

func (d *memoryDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	d.revoked[tokenID] = ttl
	return nil
}

func (d *memoryDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := d.revoked[tokenID]
	return ok, nil
}

// failingDenylist reports every lookup as failed.
type failingDenylist struct{}

func (failingDenylist) Revoke(context.Context, string, time.Duration) error {
	return errors.New("redis unavailable")
}

func (failingDenylist) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis unavailable")
}
