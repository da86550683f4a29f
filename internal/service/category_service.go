package service

import (
	"context"
	"errors"

	"github.com/catalogapp/catalog/internal/apperrors"
	"github.com/catalogapp/catalog/internal/models"
	"github.com/catalogapp/catalog/internal/query"
	"github.com/catalogapp/catalog/internal/repository"
)

type CategoryRepository interface {
	ValidID(id string) bool
	Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	GetByID(ctx context.Context, params models.GetCategoryParams) (*models.Category, error)
	GetRefs(ctx context.Context, ids []string) (map[string]*models.CategoryRef, error)
	Update(ctx context.Context, req *models.UpdateCategoryRequest) (*models.Category, error)
	List(ctx context.Context, filter models.PageFilter) ([]*models.Category, int64, error)
	SoftDelete(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error)
	HardDelete(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error)
}

// CategoryRefCache is an optional read-through cache for category
// references. Implementations swallow their own failures.
type CategoryRefCache interface {
	GetRefs(ctx context.Context, ids []string) map[string]*models.CategoryRef
	SetRefs(ctx context.Context, refs []*models.CategoryRef)
	Invalidate(ctx context.Context, id string)
}

type CategoryService struct {
	repo  CategoryRepository
	cache CategoryRefCache
}

type CategoryServiceOption func(*CategoryService)

func WithRefCache(cache CategoryRefCache) CategoryServiceOption {
	return func(s *CategoryService) {
		s.cache = cache
	}
}

func NewCategoryService(repo CategoryRepository, opts ...CategoryServiceOption) *CategoryService {
	s := &CategoryService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const categoryNameTaken = "category name already exists"

func (s *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	category, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflictError("category", categoryNameTaken)
		}
		return nil, storeError("create category", err)
	}
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, params models.GetCategoryParams) (*models.Category, error) {
	if !s.repo.ValidID(params.CategoryID) {
		return nil, errInvalidID
	}

	category, err := s.repo.GetByID(ctx, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("category", params.CategoryID)
		}
		return nil, storeError("get category", err)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, req *models.UpdateCategoryRequest) (*models.Category, error) {
	if !s.repo.ValidID(req.ID) {
		return nil, errInvalidID
	}

	category, err := s.repo.Update(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.NewNotFoundError("category", req.ID)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperrors.NewConflictError("category", categoryNameTaken)
		}
		return nil, storeError("update category", err)
	}

	s.invalidate(ctx, req.ID)
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, filter models.ListFilter) (*models.ListCategoriesResult, error) {
	window := query.NewWindow(filter.Page, filter.Limit)

	categories, total, err := s.repo.List(ctx, models.PageFilter{
		Search: query.NormalizeSearch(filter.Search),
		Skip:   window.Skip(),
		Limit:  window.Limit,
	})
	if err != nil {
		return nil, storeError("list categories", err)
	}

	return &models.ListCategoriesResult{
		Categories: categories,
		Pagination: paginate(window, total),
	}, nil
}

// DeleteCategory soft-deletes by default. A hard delete removes the record
// even if it was already soft-deleted. Products are never touched.
func (s *CategoryService) DeleteCategory(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error) {
	if !s.repo.ValidID(params.CategoryID) {
		return nil, errInvalidID
	}

	var (
		category *models.Category
		err      error
	)
	if params.Hard {
		category, err = s.repo.HardDelete(ctx, params)
	} else {
		category, err = s.repo.SoftDelete(ctx, params)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("category", params.CategoryID)
		}
		return nil, storeError("delete category", err)
	}

	s.invalidate(ctx, params.CategoryID)
	return category, nil
}

// ValidCategoryID reports whether id is well formed for the configured store.
func (s *CategoryService) ValidCategoryID(id string) bool {
	return s.repo.ValidID(id)
}

// CategoryIsLive reports whether id names a category that is not soft-deleted.
func (s *CategoryService) CategoryIsLive(ctx context.Context, id string) (bool, error) {
	if _, err := s.repo.GetByID(ctx, models.GetCategoryParams{CategoryID: id}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, storeError("get category", err)
	}
	return true, nil
}

// ResolveRefs looks up the references for ids, consulting the cache first.
// Soft-deleted categories still resolve; unknown ids are absent.
func (s *CategoryService) ResolveRefs(ctx context.Context, ids []string) (map[string]*models.CategoryRef, error) {
	refs := make(map[string]*models.CategoryRef, len(ids))
	missing := ids
	if s.cache != nil {
		if cached := s.cache.GetRefs(ctx, ids); cached != nil {
			refs = cached
		}
		missing = missing[:0:0]
		for _, id := range ids {
			if _, ok := refs[id]; !ok {
				missing = append(missing, id)
			}
		}
	}
	if len(missing) == 0 {
		return refs, nil
	}

	found, err := s.repo.GetRefs(ctx, missing)
	if err != nil {
		return nil, storeError("resolve categories", err)
	}

	fresh := make([]*models.CategoryRef, 0, len(found))
	for id, ref := range found {
		refs[id] = ref
		fresh = append(fresh, ref)
	}
	if s.cache != nil && len(fresh) > 0 {
		s.cache.SetRefs(ctx, fresh)
	}
	return refs, nil
}

func (s *CategoryService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
}

func paginate(window query.Window, total int64) models.Pagination {
	return models.Pagination{
		Page:       window.Page,
		PageSize:   window.Limit,
		TotalPage:  query.TotalPages(total, window.Limit),
		TotalCount: total,
	}
}
