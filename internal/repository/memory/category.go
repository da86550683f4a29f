// Package memory is a process-local store used for development and tests.
// It honours the same soft-delete, uniqueness and ordering rules as the
// database-backed adapters.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/catalogapp/catalog/internal/id"
	"github.com/catalogapp/catalog/internal/models"
	"github.com/catalogapp/catalog/internal/query"
	"github.com/catalogapp/catalog/internal/repository"
)

type categoryRecord struct {
	category models.Category
	seq      uint64
}

type CategoryRepository struct {
	mutex   sync.RWMutex
	records map[string]*categoryRecord
	seq     uint64
	now     func() time.Time
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		records: make(map[string]*categoryRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *CategoryRepository) ValidID(categoryID string) bool {
	return id.ValidWithPrefix(categoryID, id.CategoryPrefix)
}

func (r *CategoryRepository) Ping(_ context.Context) error {
	return nil
}

// nameTakenLocked reports whether a live category other than exceptID uses name.
func (r *CategoryRepository) nameTakenLocked(name, exceptID string) bool {
	for recID, rec := range r.records {
		if recID != exceptID && !rec.category.IsDeleted && rec.category.Name == name {
			return true
		}
	}
	return false
}

func (r *CategoryRepository) Create(_ context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.nameTakenLocked(req.Name, "") {
		return nil, repository.ErrDuplicate
	}

	now := r.now()
	c := models.Category{
		ID:        id.GenerateIDWithPrefix(id.CategoryPrefix),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != nil {
		c.Description = *req.Description
	}

	r.seq++
	r.records[c.ID] = &categoryRecord{category: c, seq: r.seq}
	return &c, nil
}

func (r *CategoryRepository) GetByID(_ context.Context, params models.GetCategoryParams) (*models.Category, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	rec, ok := r.records[params.CategoryID]
	if !ok || rec.category.IsDeleted {
		return nil, repository.ErrNotFound
	}
	c := rec.category
	return &c, nil
}

func (r *CategoryRepository) GetRefs(_ context.Context, ids []string) (map[string]*models.CategoryRef, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	refs := make(map[string]*models.CategoryRef, len(ids))
	for _, categoryID := range ids {
		if rec, ok := r.records[categoryID]; ok {
			refs[categoryID] = &models.CategoryRef{
				ID:          rec.category.ID,
				Name:        rec.category.Name,
				Description: rec.category.Description,
				Resolved:    true,
			}
		}
	}
	return refs, nil
}

func (r *CategoryRepository) Update(_ context.Context, req *models.UpdateCategoryRequest) (*models.Category, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, ok := r.records[req.ID]
	if !ok || rec.category.IsDeleted {
		return nil, repository.ErrNotFound
	}
	if req.Name != nil && r.nameTakenLocked(*req.Name, req.ID) {
		return nil, repository.ErrDuplicate
	}

	if req.Name != nil {
		rec.category.Name = *req.Name
	}
	if req.Description != nil {
		rec.category.Description = *req.Description
	}
	rec.category.UpdatedAt = r.now()

	c := rec.category
	return &c, nil
}

func (r *CategoryRepository) List(_ context.Context, filter models.PageFilter) ([]*models.Category, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var matched []*categoryRecord
	for _, rec := range r.records {
		if rec.category.IsDeleted {
			continue
		}
		if !query.Matches(filter.Search, rec.category.Name, rec.category.Description) {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.category.CreatedAt.Equal(b.category.CreatedAt) {
			return a.category.CreatedAt.After(b.category.CreatedAt)
		}
		return a.seq > b.seq
	})

	total := int64(len(matched))
	categories := make([]*models.Category, 0, filter.Limit)
	for i := filter.Skip; i < len(matched) && len(categories) < filter.Limit; i++ {
		c := matched[i].category
		categories = append(categories, &c)
	}
	return categories, total, nil
}

func (r *CategoryRepository) SoftDelete(_ context.Context, params models.DeleteCategoryParams) (*models.Category, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, ok := r.records[params.CategoryID]
	if !ok || rec.category.IsDeleted {
		return nil, repository.ErrNotFound
	}
	rec.category.IsDeleted = true
	rec.category.UpdatedAt = r.now()

	c := rec.category
	return &c, nil
}

func (r *CategoryRepository) HardDelete(_ context.Context, params models.DeleteCategoryParams) (*models.Category, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, ok := r.records[params.CategoryID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.records, params.CategoryID)

	c := rec.category
	return &c, nil
}
