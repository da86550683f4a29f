// Integration tests against a live PostgreSQL. They are skipped when
// DATABASE_URL is unset or the server cannot be reached.
package postgres

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogapp/catalog/internal/database"
	"github.com/catalogapp/catalog/internal/models"
	"github.com/catalogapp/catalog/internal/repository"
)

func testDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("skipping integration test: DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("skipping integration test: PostgreSQL not reachable: %v", err)
	}

	if _, err := database.Migrate(url, database.Up); err != nil {
		pool.Close()
		t.Fatalf("migrate: %v", err)
	}

	truncate := func() {
		_, _ = pool.Exec(ctx, `TRUNCATE products, categories`)
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		pool.Close()
	})
	return pool
}

func TestCategoryRepository_Lifecycle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	require.NoError(t, repo.Ping(ctx))

	c, err := repo.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	assert.True(t, repo.ValidID(c.ID))
	assert.Equal(t, "", c.Description)

	_, err = repo.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	desc := "Gadgets"
	updated, err := repo.Update(ctx, &models.UpdateCategoryRequest{ID: c.ID, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", updated.Name)
	assert.Equal(t, "Gadgets", updated.Description)

	_, err = repo.SoftDelete(ctx, models.DeleteCategoryParams{CategoryID: c.ID})
	require.NoError(t, err)
	_, err = repo.SoftDelete(ctx, models.DeleteCategoryParams{CategoryID: c.ID})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	refs, err := repo.GetRefs(ctx, []string{c.ID})
	require.NoError(t, err)
	require.Contains(t, refs, c.ID)
	assert.Equal(t, "Gadgets", refs[c.ID].Description)

	_, err = repo.HardDelete(ctx, models.DeleteCategoryParams{CategoryID: c.ID, Hard: true})
	require.NoError(t, err)
	_, err = repo.HardDelete(ctx, models.DeleteCategoryParams{CategoryID: c.ID, Hard: true})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductRepository_ListAndSearch(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	for _, name := range []string{"Phone", "100% cotton shirt", "Tablet"} {
		_, err := repo.Create(ctx, &models.CreateProductRequest{Name: name, Price: 1, CategoryID: "cat_x"})
		require.NoError(t, err)
	}

	got, total, err := repo.List(ctx, models.PageFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, got, 2)

	got, total, err = repo.List(ctx, models.PageFilter{Search: "%", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "100% cotton shirt", got[0].Name)

	got, total, err = repo.List(ctx, models.PageFilter{Search: "PHO", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)

	qty := 7
	updated, err := repo.Update(ctx, &models.UpdateProductRequest{ID: got[0].ID, Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, "Phone", updated.Name)
	assert.Equal(t, 1.0, updated.Price)
}

func TestProductRepository_QuantityAboveInt32(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	qty := math.MaxInt32 + 1
	p, err := repo.Create(ctx, &models.CreateProductRequest{Name: "Bolt", Price: 0.1, Quantity: qty, CategoryID: "cat_x"})
	require.NoError(t, err)
	assert.Equal(t, qty, p.Quantity)

	qty = math.MaxInt64
	updated, err := repo.Update(ctx, &models.UpdateProductRequest{ID: p.ID, Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt64, updated.Quantity)
}
