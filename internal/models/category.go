package models

import "time"

type Category struct {
	ID          string
	Name        string
	Description string
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryRef is the slice of a category embedded into product responses.
// Resolved is false when the referenced category no longer exists.
type CategoryRef struct {
	ID          string
	Name        string
	Description string
	Resolved    bool
}

type CreateCategoryRequest struct {
	Name        string
	Description *string
}

type UpdateCategoryRequest struct {
	ID          string
	Name        *string
	Description *string
}

type GetCategoryParams struct {
	CategoryID string
}

type DeleteCategoryParams struct {
	CategoryID string
	Hard       bool
}

type ListCategoriesResult struct {
	Categories []*Category
	Pagination Pagination
}
