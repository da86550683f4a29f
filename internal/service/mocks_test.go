package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/catalogapp/catalog/internal/models"
)

// MockCategoryRepository is a mock implementation of service.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ValidID(id string) bool {
	return m.Called(id).Bool(0)
}

func (m *MockCategoryRepository) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, params models.GetCategoryParams) (*models.Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetRefs(ctx context.Context, ids []string) (map[string]*models.CategoryRef, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*models.CategoryRef), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, req *models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, filter models.PageFilter) ([]*models.Category, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) SoftDelete(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) HardDelete(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

// MockProductRepository is a mock implementation of service.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ValidID(id string) bool {
	return m.Called(id).Bool(0)
}

func (m *MockProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, params models.GetProductParams) (*models.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter models.PageFilter) ([]*models.Product, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) SoftDelete(ctx context.Context, params models.DeleteProductParams) (*models.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) HardDelete(ctx context.Context, params models.DeleteProductParams) (*models.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

// MockCategoryRefCache is a mock implementation of service.CategoryRefCache
type MockCategoryRefCache struct {
	mock.Mock
}

func (m *MockCategoryRefCache) GetRefs(ctx context.Context, ids []string) map[string]*models.CategoryRef {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]*models.CategoryRef)
}

func (m *MockCategoryRefCache) SetRefs(ctx context.Context, refs []*models.CategoryRef) {
	m.Called(ctx, refs)
}

func (m *MockCategoryRefCache) Invalidate(ctx context.Context, id string) {
	m.Called(ctx, id)
}

// MockCategoryLookup is a mock implementation of service.CategoryLookup
type MockCategoryLookup struct {
	mock.Mock
}

func (m *MockCategoryLookup) ValidCategoryID(id string) bool {
	return m.Called(id).Bool(0)
}

func (m *MockCategoryLookup) CategoryIsLive(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryLookup) ResolveRefs(ctx context.Context, ids []string) (map[string]*models.CategoryRef, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*models.CategoryRef), args.Error(1)
}
