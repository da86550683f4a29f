package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/catalogapp/catalog/internal/id"
	"github.com/catalogapp/catalog/internal/models"
)

const categoryColumns = `id, name, description, is_deleted, created_at, updated_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

type CategoryRepository struct {
	db DB
}

func NewCategoryRepository(db DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ValidID(categoryID string) bool {
	return id.ValidWithPrefix(categoryID, id.CategoryPrefix)
}

func (r *CategoryRepository) Ping(ctx context.Context) error {
	return Ping(ctx, r.db)
}

func (r *CategoryRepository) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	c, err := scanCategory(r.db.QueryRow(ctx, `
		INSERT INTO categories (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING `+categoryColumns,
		id.GenerateIDWithPrefix(id.CategoryPrefix), req.Name, description,
	))
	if err != nil {
		return nil, fmt.Errorf("create category: %w", translateError(err))
	}
	return c, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, params models.GetCategoryParams) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND NOT is_deleted`,
		params.CategoryID,
	))
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

// GetRefs resolves ids regardless of soft-deletion. Unknown ids are absent
// from the result.
func (r *CategoryRepository) GetRefs(ctx context.Context, ids []string) (map[string]*models.CategoryRef, error) {
	refs := make(map[string]*models.CategoryRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM categories WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("find category refs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ref := models.CategoryRef{Resolved: true}
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Description); err != nil {
			return nil, fmt.Errorf("scan category ref: %w", err)
		}
		refs[ref.ID] = &ref
	}
	return refs, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, req *models.UpdateCategoryRequest) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `
		UPDATE categories SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
		RETURNING `+categoryColumns,
		req.ID, req.Name, req.Description,
	))
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

func (r *CategoryRepository) List(ctx context.Context, filter models.PageFilter) ([]*models.Category, int64, error) {
	where, args := listWhere(filter.Search)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	n := len(args)
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM categories %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
			categoryColumns, where, n+1, n+2),
		append(args, filter.Limit, filter.Skip)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*models.Category, 0, filter.Limit)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	return categories, total, nil
}

func (r *CategoryRepository) SoftDelete(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `
		UPDATE categories SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
		RETURNING `+categoryColumns,
		params.CategoryID,
	))
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

func (r *CategoryRepository) HardDelete(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`DELETE FROM categories WHERE id = $1 RETURNING `+categoryColumns,
		params.CategoryID,
	))
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}
