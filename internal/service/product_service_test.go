package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/catalogapp/catalog/internal/apperrors"
	"github.com/catalogapp/catalog/internal/models"
	"github.com/catalogapp/catalog/internal/repository"
	"github.com/catalogapp/catalog/internal/service"
)

func electronicsRef() map[string]*models.CategoryRef {
	return map[string]*models.CategoryRef{
		"c1": {ID: "c1", Name: "Electronics", Description: "Gadgets", Resolved: true},
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryLookup)
	svc := service.NewProductService(mockRepo, mockCategories)

	req := &models.CreateProductRequest{Name: "Phone", Price: 499.99, Quantity: 5, CategoryID: "c1"}

	mockCategories.On("ValidCategoryID", "c1").Return(true)
	mockCategories.On("CategoryIsLive", ctx, "c1").Return(true, nil).Once()
	mockRepo.On("Create", ctx, req).Return(&models.Product{ID: "p1", Name: "Phone", CategoryID: "c1"}, nil).Once()
	mockCategories.On("ResolveRefs", ctx, []string{"c1"}).Return(electronicsRef(), nil).Once()

	got, err := svc.CreateProduct(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Electronics", got.Category.Name)
	assert.True(t, got.Category.Resolved)

	mockRepo.AssertExpectations(t)
	mockCategories.AssertExpectations(t)
}

func TestProductService_CreateProductRejectsUnknownCategory(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryLookup)
	svc := service.NewProductService(mockRepo, mockCategories)

	mockCategories.On("ValidCategoryID", "nope").Return(false).Once()
	_, err := svc.CreateProduct(ctx, &models.CreateProductRequest{Name: "Phone", CategoryID: "nope"})
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "categoryId", validation.Field)

	mockCategories.On("ValidCategoryID", "c404").Return(true).Once()
	mockCategories.On("CategoryIsLive", ctx, "c404").Return(false, nil).Once()
	_, err = svc.CreateProduct(ctx, &models.CreateProductRequest{Name: "Phone", CategoryID: "c404"})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "category does not exist", validation.Message)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockCategories.AssertExpectations(t)
}

func TestProductService_UpdateProductPartial(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryLookup)
	svc := service.NewProductService(mockRepo, mockCategories)

	price := 10.0
	req := &models.UpdateProductRequest{ID: "p1", Price: &price}

	mockRepo.On("ValidID", "p1").Return(true)
	mockRepo.On("Update", ctx, req).Return(&models.Product{ID: "p1", Price: 10, CategoryID: "c1"}, nil).Once()
	mockCategories.On("ResolveRefs", ctx, []string{"c1"}).Return(electronicsRef(), nil).Once()

	got, err := svc.UpdateProduct(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Price)

	// Without a categoryId in the payload the reference is not re-checked.
	mockCategories.AssertNotCalled(t, "CategoryIsLive", mock.Anything, mock.Anything)

	mockRepo.On("Update", ctx, req).Return(nil, repository.ErrNotFound).Once()
	_, err = svc.UpdateProduct(ctx, req)
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	mockRepo.AssertExpectations(t)
	mockCategories.AssertExpectations(t)
}

func TestProductService_UpdateProductChecksNewCategory(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryLookup)
	svc := service.NewProductService(mockRepo, mockCategories)

	categoryID := "c2"
	req := &models.UpdateProductRequest{ID: "p1", CategoryID: &categoryID}

	mockRepo.On("ValidID", "p1").Return(true)
	mockCategories.On("ValidCategoryID", "c2").Return(true)
	mockCategories.On("CategoryIsLive", ctx, "c2").Return(false, nil).Once()

	_, err := svc.UpdateProduct(ctx, req)
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "categoryId", validation.Field)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_ListProductsExpandsOnce(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryLookup)
	svc := service.NewProductService(mockRepo, mockCategories)

	products := []*models.Product{
		{ID: "p3", CategoryID: "c1"},
		{ID: "p2", CategoryID: "gone"},
		{ID: "p1", CategoryID: "c1"},
	}
	mockRepo.On("List", ctx, models.PageFilter{Search: "phone", Skip: 0, Limit: 10}).
		Return(products, int64(3), nil).Once()
	mockCategories.On("ResolveRefs", ctx, []string{"c1", "gone"}).Return(electronicsRef(), nil).Once()

	got, err := svc.ListProducts(ctx, models.ListFilter{Page: 1, Limit: 10, Search: "phone"})
	require.NoError(t, err)
	require.Len(t, got.Products, 3)

	assert.Equal(t, "Electronics", got.Products[0].Category.Name)
	assert.Equal(t, &models.CategoryRef{ID: "gone"}, got.Products[1].Category)
	assert.Equal(t, "Electronics", got.Products[2].Category.Name)
	assert.Equal(t, models.Pagination{Page: 1, PageSize: 10, TotalPage: 1, TotalCount: 3}, got.Pagination)

	mockRepo.AssertExpectations(t)
	mockCategories.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryLookup)
	svc := service.NewProductService(mockRepo, mockCategories)

	soft := models.DeleteProductParams{ProductID: "p1"}
	hard := models.DeleteProductParams{ProductID: "p1", Hard: true}

	mockRepo.On("ValidID", "p1").Return(true)
	mockRepo.On("SoftDelete", ctx, soft).Return(&models.Product{ID: "p1", CategoryID: "c1", IsDeleted: true}, nil).Once()
	mockRepo.On("SoftDelete", ctx, soft).Return(nil, repository.ErrNotFound).Once()
	mockRepo.On("HardDelete", ctx, hard).Return(&models.Product{ID: "p1", CategoryID: "c1", IsDeleted: true}, nil).Once()
	mockCategories.On("ResolveRefs", ctx, []string{"c1"}).Return(electronicsRef(), nil)

	got, err := svc.DeleteProduct(ctx, soft)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, "Electronics", got.Category.Name)

	_, err = svc.DeleteProduct(ctx, soft)
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = svc.DeleteProduct(ctx, hard)
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductInvalidID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo, new(MockCategoryLookup))

	mockRepo.On("ValidID", "../etc").Return(false).Once()

	_, err := svc.GetProduct(ctx, models.GetProductParams{ProductID: "../etc"})
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "id", validation.Field)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
