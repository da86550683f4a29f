package api

import "strings"

// CreateCategoryRequest represents the request body for creating a category.
// @Description Request payload for creating a category
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=255" example:"Electronics"`
	Description *string `json:"description" validate:"omitnil,max=1000" example:"Electronic devices and accessories"`
}

// UpdateCategoryRequest represents the request body for updating a category.
// @Description Request payload for updating a category; every field is optional
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=255" example:"Updated Category"`
	Description *string `json:"description" validate:"omitnil,max=1000" example:"Updated description"`
}

// CreateProductRequest represents the request body for creating a product.
// @Description Request payload for creating a product
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=255" example:"Phone"`
	Description *string  `json:"description" validate:"omitnil,max=1000" example:"Product description"`
	Price       *float64 `json:"price" validate:"required,gte=0" example:"499.99"`
	Quantity    *int     `json:"quantity" validate:"omitnil,gte=0" example:"5"`
	CategoryID  string   `json:"categoryId" validate:"required" example:"507f1f77bcf86cd799439011"`
}

// UpdateProductRequest represents the request body for updating a product.
// @Description Request payload for updating a product; every field is optional
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitnil,min=1,max=255" example:"Updated Product"`
	Description *string  `json:"description" validate:"omitnil,max=1000" example:"Updated description"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0" example:"149.99"`
	Quantity    *int     `json:"quantity" validate:"omitnil,gte=0" example:"50"`
	CategoryID  *string  `json:"categoryId" validate:"omitnil,min=1" example:"507f1f77bcf86cd799439011"`
}

// listQuery holds the parsed query string of a list request.
type listQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search" validate:"max=200"`
}

// CategoryResponse represents a category resource in API responses.
// @Description Category resource
type CategoryResponse struct {
	ID          string `json:"_id" example:"507f1f77bcf86cd799439011"`
	Name        string `json:"name" example:"Electronics"`
	Description string `json:"description" example:"Electronic devices and accessories"`
	IsDeleted   bool   `json:"isDeleted" example:"false"`
	CreatedAt   string `json:"createdAt" example:"2026-01-09T10:00:00Z"`
	UpdatedAt   string `json:"updatedAt" example:"2026-01-09T10:00:00Z"`
}

// CategoryRefResponse is the category embedded in a product. Only _id is
// present when the category no longer exists.
// @Description Populated category details
type CategoryRefResponse struct {
	ID          string  `json:"_id" example:"507f1f77bcf86cd799439011"`
	Name        *string `json:"name,omitempty" example:"Electronics"`
	Description *string `json:"description,omitempty" example:"Electronic devices and accessories"`
}

// ProductResponse represents a product resource in API responses.
// @Description Product resource
type ProductResponse struct {
	ID          string              `json:"_id" example:"507f1f77bcf86cd799439012"`
	Name        string              `json:"name" example:"Phone"`
	Description string              `json:"description" example:"Product description"`
	Price       float64             `json:"price" example:"499.99"`
	Quantity    int                 `json:"quantity" example:"5"`
	Category    CategoryRefResponse `json:"categoryId"`
	IsDeleted   bool                `json:"isDeleted" example:"false"`
	CreatedAt   string              `json:"createdAt" example:"2026-01-09T10:00:00Z"`
	UpdatedAt   string              `json:"updatedAt" example:"2026-01-09T10:00:00Z"`
}

// DeleteCategoryResponse is returned by DELETE /category/{id}.
// @Description Deleted category
type DeleteCategoryResponse struct {
	Message  string           `json:"message" example:"Category deleted successfully"`
	Category CategoryResponse `json:"category"`
}

// DeleteProductResponse is returned by DELETE /product/{id}.
// @Description Deleted product
type DeleteProductResponse struct {
	Message string          `json:"message" example:"Product deleted successfully"`
	Product ProductResponse `json:"product"`
}

// normalize trims the free-text fields before validation.
func (r *CreateCategoryRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(r.Description)
}

func (r *UpdateCategoryRequest) normalize() {
	trimPtr(r.Name)
	trimPtr(r.Description)
}

func (r *CreateProductRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	trimPtr(r.Description)
}

func (r *UpdateProductRequest) normalize() {
	trimPtr(r.Name)
	trimPtr(r.Description)
	trimPtr(r.CategoryID)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
