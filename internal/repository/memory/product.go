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

type productRecord struct {
	product models.Product
	seq     uint64
}

type ProductRepository struct {
	mutex   sync.RWMutex
	records map[string]*productRecord
	seq     uint64
	now     func() time.Time
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		records: make(map[string]*productRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *ProductRepository) ValidID(productID string) bool {
	return id.ValidWithPrefix(productID, id.ProductPrefix)
}

func (r *ProductRepository) Create(_ context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := r.now()
	p := models.Product{
		ID:         id.GenerateIDWithPrefix(id.ProductPrefix),
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		CategoryID: req.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Description != nil {
		p.Description = *req.Description
	}

	r.seq++
	r.records[p.ID] = &productRecord{product: p, seq: r.seq}
	return &p, nil
}

func (r *ProductRepository) GetByID(_ context.Context, params models.GetProductParams) (*models.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	rec, ok := r.records[params.ProductID]
	if !ok || rec.product.IsDeleted {
		return nil, repository.ErrNotFound
	}
	p := rec.product
	return &p, nil
}

func (r *ProductRepository) Update(_ context.Context, req *models.UpdateProductRequest) (*models.Product, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, ok := r.records[req.ID]
	if !ok || rec.product.IsDeleted {
		return nil, repository.ErrNotFound
	}

	if req.Name != nil {
		rec.product.Name = *req.Name
	}
	if req.Description != nil {
		rec.product.Description = *req.Description
	}
	if req.Price != nil {
		rec.product.Price = *req.Price
	}
	if req.Quantity != nil {
		rec.product.Quantity = *req.Quantity
	}
	if req.CategoryID != nil {
		rec.product.CategoryID = *req.CategoryID
	}
	rec.product.UpdatedAt = r.now()

	p := rec.product
	return &p, nil
}

func (r *ProductRepository) List(_ context.Context, filter models.PageFilter) ([]*models.Product, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var matched []*productRecord
	for _, rec := range r.records {
		if rec.product.IsDeleted {
			continue
		}
		if !query.Matches(filter.Search, rec.product.Name, rec.product.Description) {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.product.CreatedAt.Equal(b.product.CreatedAt) {
			return a.product.CreatedAt.After(b.product.CreatedAt)
		}
		return a.seq > b.seq
	})

	total := int64(len(matched))
	products := make([]*models.Product, 0, filter.Limit)
	for i := filter.Skip; i < len(matched) && len(products) < filter.Limit; i++ {
		p := matched[i].product
		products = append(products, &p)
	}
	return products, total, nil
}

func (r *ProductRepository) SoftDelete(_ context.Context, params models.DeleteProductParams) (*models.Product, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, ok := r.records[params.ProductID]
	if !ok || rec.product.IsDeleted {
		return nil, repository.ErrNotFound
	}
	rec.product.IsDeleted = true
	rec.product.UpdatedAt = r.now()

	p := rec.product
	return &p, nil
}

func (r *ProductRepository) HardDelete(_ context.Context, params models.DeleteProductParams) (*models.Product, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, ok := r.records[params.ProductID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.records, params.ProductID)

	p := rec.product
	return &p, nil
}
