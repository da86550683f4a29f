package service

import (
	"context"
	"errors"

	"github.com/catalogapp/catalog/internal/apperrors"
	"github.com/catalogapp/catalog/internal/models"
	"github.com/catalogapp/catalog/internal/query"
	"github.com/catalogapp/catalog/internal/repository"
)

type ProductRepository interface {
	ValidID(id string) bool
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, params models.GetProductParams) (*models.Product, error)
	Update(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error)
	List(ctx context.Context, filter models.PageFilter) ([]*models.Product, int64, error)
	SoftDelete(ctx context.Context, params models.DeleteProductParams) (*models.Product, error)
	HardDelete(ctx context.Context, params models.DeleteProductParams) (*models.Product, error)
}

// CategoryLookup is what products need from categories: reference checks on
// write and expansion on read. *CategoryService implements it.
type CategoryLookup interface {
	ValidCategoryID(id string) bool
	CategoryIsLive(ctx context.Context, id string) (bool, error)
	ResolveRefs(ctx context.Context, ids []string) (map[string]*models.CategoryRef, error)
}

type ProductService struct {
	repo       ProductRepository
	categories CategoryLookup
}

func NewProductService(repo ProductRepository, categories CategoryLookup) *ProductService {
	return &ProductService{repo: repo, categories: categories}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, storeError("create product", err)
	}
	return s.expandOne(ctx, product)
}

func (s *ProductService) GetProduct(ctx context.Context, params models.GetProductParams) (*models.Product, error) {
	if !s.repo.ValidID(params.ProductID) {
		return nil, errInvalidID
	}

	product, err := s.repo.GetByID(ctx, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", params.ProductID)
		}
		return nil, storeError("get product", err)
	}
	return s.expandOne(ctx, product)
}

func (s *ProductService) UpdateProduct(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error) {
	if !s.repo.ValidID(req.ID) {
		return nil, errInvalidID
	}
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	product, err := s.repo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", req.ID)
		}
		return nil, storeError("update product", err)
	}
	return s.expandOne(ctx, product)
}

func (s *ProductService) ListProducts(ctx context.Context, filter models.ListFilter) (*models.ListProductsResult, error) {
	window := query.NewWindow(filter.Page, filter.Limit)

	products, total, err := s.repo.List(ctx, models.PageFilter{
		Search: query.NormalizeSearch(filter.Search),
		Skip:   window.Skip(),
		Limit:  window.Limit,
	})
	if err != nil {
		return nil, storeError("list products", err)
	}

	if err := s.expand(ctx, products); err != nil {
		return nil, err
	}

	return &models.ListProductsResult{
		Products:   products,
		Pagination: paginate(window, total),
	}, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, params models.DeleteProductParams) (*models.Product, error) {
	if !s.repo.ValidID(params.ProductID) {
		return nil, errInvalidID
	}

	var (
		product *models.Product
		err     error
	)
	if params.Hard {
		product, err = s.repo.HardDelete(ctx, params)
	} else {
		product, err = s.repo.SoftDelete(ctx, params)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", params.ProductID)
		}
		return nil, storeError("delete product", err)
	}
	return s.expandOne(ctx, product)
}

// checkCategory requires categoryID to name a live category.
func (s *ProductService) checkCategory(ctx context.Context, categoryID string) error {
	if !s.categories.ValidCategoryID(categoryID) {
		return apperrors.NewValidationError("categoryId", "must be a valid identifier")
	}
	live, err := s.categories.CategoryIsLive(ctx, categoryID)
	if err != nil {
		return err
	}
	if !live {
		return apperrors.NewValidationError("categoryId", "category does not exist")
	}
	return nil
}

func (s *ProductService) expandOne(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := s.expand(ctx, []*models.Product{product}); err != nil {
		return nil, err
	}
	return product, nil
}

// expand attaches category references with one batched lookup. References
// that no longer resolve keep only their id.
func (s *ProductService) expand(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.CategoryID]; ok {
			continue
		}
		seen[p.CategoryID] = struct{}{}
		ids = append(ids, p.CategoryID)
	}

	refs, err := s.categories.ResolveRefs(ctx, ids)
	if err != nil {
		return err
	}

	for _, p := range products {
		if ref, ok := refs[p.CategoryID]; ok {
			r := *ref
			p.Category = &r
			continue
		}
		p.Category = &models.CategoryRef{ID: p.CategoryID}
	}
	return nil
}
