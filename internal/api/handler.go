package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/catalogapp/catalog/internal/apperrors"
	"github.com/catalogapp/catalog/internal/models"
)

// CategoryService defines only the methods the API layer needs from the category service.
type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	GetCategory(ctx context.Context, params models.GetCategoryParams) (*models.Category, error)
	UpdateCategory(ctx context.Context, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error)
	ListCategories(ctx context.Context, filter models.ListFilter) (*models.ListCategoriesResult, error)
}

// ProductService defines only the methods the API layer needs from the product service.
type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, params models.GetProductParams) (*models.Product, error)
	UpdateProduct(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, params models.DeleteProductParams) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ListFilter) (*models.ListProductsResult, error)
}

// Pinger checks that the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	categorySvc CategoryService
	productSvc  ProductService
	store       Pinger
}

func NewHandler(categorySvc CategoryService, productSvc ProductService, store Pinger) *Handler {
	return &Handler{
		categorySvc: categorySvc,
		productSvc:  productSvc,
		store:       store,
	}
}

// Root godoc
// @Summary Liveness message
// @Tags system
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	Success(w, MessageResponse{Message: "Catalog API is running"})
}

// Health godoc
// @Summary Store health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		handleServiceError(w, r, apperrors.NewServiceUnavailableError(err.Error()))
		return
	}
	Success(w, HealthResponse{Status: "ok"})
}

// parseListQuery reads page, limit and search. Out-of-range numbers are
// clamped by the service; only non-integers are rejected here.
func parseListQuery(r *http.Request) (models.ListFilter, error) {
	q := r.URL.Query()
	var (
		lq     listQuery
		issues []apperrors.FieldIssue
	)

	for _, p := range []struct {
		name string
		dst  *int
	}{{"page", &lq.Page}, {"limit", &lq.Limit}} {
		raw := strings.TrimSpace(q.Get(p.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			issues = append(issues, apperrors.FieldIssue{Field: p.name, Message: p.name + " must be an integer"})
			continue
		}
		*p.dst = n
	}
	if len(issues) > 0 {
		return models.ListFilter{}, apperrors.NewValidationErrors(issues)
	}

	lq.Search = strings.TrimSpace(q.Get("search"))
	if err := ValidateStruct(lq); err != nil {
		return models.ListFilter{}, err
	}

	return models.ListFilter{Page: lq.Page, Limit: lq.Limit, Search: lq.Search}, nil
}

// parseHard reads the ?hard flag of a delete request.
func parseHard(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("hard")
	if raw == "" {
		return false, nil
	}
	hard, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.NewValidationError("hard", "hard must be a boolean")
	}
	return hard, nil
}

func convertToCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsDeleted:   category.IsDeleted,
		CreatedAt:   category.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   category.UpdatedAt.Format(time.RFC3339),
	}
}

func convertToCategoryRefResponse(categoryID string, ref *models.CategoryRef) CategoryRefResponse {
	if ref == nil || !ref.Resolved {
		return CategoryRefResponse{ID: categoryID}
	}
	name, description := ref.Name, ref.Description
	return CategoryRefResponse{
		ID:          ref.ID,
		Name:        &name,
		Description: &description,
	}
}

func convertToProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Category:    convertToCategoryRefResponse(product.CategoryID, product.Category),
		IsDeleted:   product.IsDeleted,
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   product.UpdatedAt.Format(time.RFC3339),
	}
}
