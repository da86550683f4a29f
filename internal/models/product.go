package models

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Quantity    int
	CategoryID  string
	// Category is filled in by the product service on every read.
	Category  *CategoryRef
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateProductRequest struct {
	Name        string
	Description *string
	Price       float64
	Quantity    int
	CategoryID  string
}

type UpdateProductRequest struct {
	ID          string
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
	CategoryID  *string
}

type GetProductParams struct {
	ProductID string
}

type DeleteProductParams struct {
	ProductID string
	Hard      bool
}

type ListProductsResult struct {
	Products   []*Product
	Pagination Pagination
}
