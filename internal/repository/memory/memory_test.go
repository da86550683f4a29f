package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogapp/catalog/internal/models"
	"github.com/catalogapp/catalog/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestCategoryRepository_UniqueNameAmongLiveCategories(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()

	first, err := repo.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	assert.True(t, repo.ValidID(first.ID))
	assert.Equal(t, "", first.Description)

	_, err = repo.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = repo.SoftDelete(ctx, models.DeleteCategoryParams{CategoryID: first.ID})
	require.NoError(t, err)

	second, err := repo.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCategoryRepository_UpdateNameClash(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()

	a, err := repo.Create(ctx, &models.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.CreateCategoryRequest{Name: "Games"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, &models.UpdateCategoryRequest{ID: a.ID, Name: strPtr("Games")})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	updated, err := repo.Update(ctx, &models.UpdateCategoryRequest{ID: a.ID, Name: strPtr("Books")})
	require.NoError(t, err)
	assert.Equal(t, "Books", updated.Name)
}

func TestCategoryRepository_SoftAndHardDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()

	c, err := repo.Create(ctx, &models.CreateCategoryRequest{Name: "Toys", Description: strPtr("For kids")})
	require.NoError(t, err)

	deleted, err := repo.SoftDelete(ctx, models.DeleteCategoryParams{CategoryID: c.ID})
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)

	_, err = repo.SoftDelete(ctx, models.DeleteCategoryParams{CategoryID: c.ID})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, models.GetCategoryParams{CategoryID: c.ID})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Update(ctx, &models.UpdateCategoryRequest{ID: c.ID, Name: strPtr("Dolls")})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	refs, err := repo.GetRefs(ctx, []string{c.ID})
	require.NoError(t, err)
	require.Contains(t, refs, c.ID)
	assert.Equal(t, "For kids", refs[c.ID].Description)

	hard, err := repo.HardDelete(ctx, models.DeleteCategoryParams{CategoryID: c.ID, Hard: true})
	require.NoError(t, err)
	assert.Equal(t, c.ID, hard.ID)

	_, err = repo.HardDelete(ctx, models.DeleteCategoryParams{CategoryID: c.ID, Hard: true})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	refs, err = repo.GetRefs(ctx, []string{c.ID})
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestProductRepository_ListOrderAndWindow(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	base := time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, &models.CreateProductRequest{
			Name:       fmt.Sprintf("Phone %d", i),
			Price:      float64(i),
			CategoryID: "cat_x",
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &models.CreateProductRequest{Name: "Tablet", CategoryID: "cat_x"})
	require.NoError(t, err)

	page, total, err := repo.List(ctx, models.PageFilter{Search: "phone", Skip: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, "Phone 3", page[0].Name)
	assert.Equal(t, "Phone 2", page[1].Name)

	beyond, total, err := repo.List(ctx, models.PageFilter{Skip: 10, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Empty(t, beyond)
}

func TestProductRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	base := time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return base }

	p, err := repo.Create(ctx, &models.CreateProductRequest{
		Name: "Phone", Price: 499.99, Quantity: 5, CategoryID: "cat_a",
	})
	require.NoError(t, err)

	repo.now = func() time.Time { return base.Add(time.Hour) }
	price := 10.0
	updated, err := repo.Update(ctx, &models.UpdateProductRequest{ID: p.ID, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 10.0, updated.Price)
	assert.Equal(t, "Phone", updated.Name)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, "cat_a", updated.CategoryID)
	assert.Equal(t, base, updated.CreatedAt)
	assert.Equal(t, base.Add(time.Hour), updated.UpdatedAt)
}
