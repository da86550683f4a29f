package client

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

type Category struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryRef is the category embedded in a product. Name and Description
// are empty when the category no longer exists.
type CategoryRef struct {
	ID          string `json:"_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type Product struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Quantity    int         `json:"quantity"`
	Category    CategoryRef `json:"categoryId"`
	IsDeleted   bool        `json:"isDeleted"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type CategoryList struct {
	Data       []Category `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type ProductList struct {
	Data       []Product  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type CreateCategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateCategoryInput sends only the non-nil fields.
type UpdateCategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateProductInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    *int    `json:"quantity,omitempty"`
	CategoryID  string  `json:"categoryId"`
}

// UpdateProductInput sends only the non-nil fields.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context, params ListParams) (*CategoryList, error) {
	var out CategoryList
	if err := c.do(ctx, http.MethodGet, "/categories", params.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodGet, "/category/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategory(ctx context.Context, in CreateCategoryInput) (*Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPost, "/category", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in UpdateCategoryInput) (*Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPut, "/category/"+url.PathEscape(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory soft-deletes the category, or removes it when hard is set.
func (c *Client) DeleteCategory(ctx context.Context, id string, hard bool) (*Category, error) {
	var out struct {
		Category Category `json:"category"`
	}
	if err := c.do(ctx, http.MethodDelete, "/category/"+url.PathEscape(id), hardQuery(hard), nil, &out); err != nil {
		return nil, err
	}
	return &out.Category, nil
}

func (c *Client) ListProducts(ctx context.Context, params ListParams) (*ProductList, error) {
	var out ProductList
	if err := c.do(ctx, http.MethodGet, "/products", params.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, "/product/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in CreateProductInput) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPost, "/product", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPut, "/product/"+url.PathEscape(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct soft-deletes the product, or removes it when hard is set.
func (c *Client) DeleteProduct(ctx context.Context, id string, hard bool) (*Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodDelete, "/product/"+url.PathEscape(id), hardQuery(hard), nil, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}
