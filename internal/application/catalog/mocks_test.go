package catalog

import (
	"context"

	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockBrandRepository is a mock implementation of BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id string) (*catalog.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindByIDs(ctx context.Context, ids []string) ([]catalog.Brand, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Brand, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []string) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockProductBrandRepository is a mock implementation of ProductBrandRepository
type MockProductBrandRepository struct {
	mock.Mock
}

func (m *MockProductBrandRepository) Create(ctx context.Context, links ...*catalog.ProductBrand) error {
	args := m.Called(ctx, links)
	return args.Error(0)
}

func (m *MockProductBrandRepository) Dismiss(ctx context.Context, productID, brandID string) (int64, error) {
	args := m.Called(ctx, productID, brandID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductBrandRepository) DismissByProduct(ctx context.Context, productID string) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductBrandRepository) DismissByBrand(ctx context.Context, brandID string) (int64, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductBrandRepository) FindByProductIDs(ctx context.Context, productIDs []string) ([]catalog.ProductBrand, error) {
	args := m.Called(ctx, productIDs)
	return args.Get(0).([]catalog.ProductBrand), args.Error(1)
}

func (m *MockProductBrandRepository) FindByBrandIDs(ctx context.Context, brandIDs []string) ([]catalog.ProductBrand, error) {
	args := m.Called(ctx, brandIDs)
	return args.Get(0).([]catalog.ProductBrand), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func newTestBrand(name string) *catalog.Brand {
	brand, err := catalog.NewBrand(name)
	if err != nil {
		panic(err)
	}
	brand.PullEvents()
	return brand
}

func newTestProduct(title string) *catalog.Product {
	product, err := catalog.NewProduct(catalog.NewProductInput{Title: title})
	if err != nil {
		panic(err)
	}
	product.PullEvents()
	return product
}
