package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/catalogapp/catalog/internal/id"
	"github.com/catalogapp/catalog/internal/models"
)

const productColumns = `id, name, description, price, quantity, category_id, is_deleted, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.CategoryID, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ValidID(productID string) bool {
	return id.ValidWithPrefix(productID, id.ProductPrefix)
}

func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	p, err := scanProduct(r.db.QueryRow(ctx, `
		INSERT INTO products (id, name, description, price, quantity, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+productColumns,
		id.GenerateIDWithPrefix(id.ProductPrefix), req.Name, description, req.Price, req.Quantity, req.CategoryID,
	))
	if err != nil {
		return nil, fmt.Errorf("create product: %w", translateError(err))
	}
	return p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, params models.GetProductParams) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND NOT is_deleted`,
		params.ProductID,
	))
	if err != nil {
		return nil, translateError(err)
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `
		UPDATE products SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			quantity = COALESCE($5, quantity),
			category_id = COALESCE($6, category_id),
			updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
		RETURNING `+productColumns,
		req.ID, req.Name, req.Description, req.Price, req.Quantity, req.CategoryID,
	))
	if err != nil {
		return nil, translateError(err)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter models.PageFilter) ([]*models.Product, int64, error) {
	where, args := listWhere(filter.Search)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	n := len(args)
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM products %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
			productColumns, where, n+1, n+2),
		append(args, filter.Limit, filter.Skip)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0, filter.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

func (r *ProductRepository) SoftDelete(ctx context.Context, params models.DeleteProductParams) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `
		UPDATE products SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
		RETURNING `+productColumns,
		params.ProductID,
	))
	if err != nil {
		return nil, translateError(err)
	}
	return p, nil
}

func (r *ProductRepository) HardDelete(ctx context.Context, params models.DeleteProductParams) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`DELETE FROM products WHERE id = $1 RETURNING `+productColumns,
		params.ProductID,
	))
	if err != nil {
		return nil, translateError(err)
	}
	return p, nil
}
