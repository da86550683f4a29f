package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"

	"github.com/catalogapp/catalog/internal/models"
)

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CreateCategoryRequest true "Category to create"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /category [post]
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		InvalidBody(w, r, err)
		return
	}

	req.normalize()
	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"category_name": req.Name,
	})

	category, err := h.categorySvc.CreateCategory(r.Context(), &models.CreateCategoryRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Created(w, convertToCategoryResponse(category))
}

// ListCategories godoc
// @Summary List live categories
// @Tags categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (1-100)" default(10)
// @Param search query string false "Case-insensitive match on name or description"
// @Success 200 {object} CategoryListResponse
// @Failure 400 {object} ErrorResponse
// @Router /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListQuery(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	result, err := h.categorySvc.ListCategories(r.Context(), filter)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	responses := make([]CategoryResponse, len(result.Categories))
	for i, c := range result.Categories {
		responses[i] = convertToCategoryResponse(c)
	}

	Success(w, NewListResponse(responses, result.Pagination))
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /category/{id} [get]
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	category, err := h.categorySvc.GetCategory(r.Context(), models.GetCategoryParams{
		CategoryID: id,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToCategoryResponse(category))
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /category/{id} [put]
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		InvalidBody(w, r, err)
		return
	}

	req.normalize()
	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	category, err := h.categorySvc.UpdateCategory(r.Context(), &models.UpdateCategoryRequest{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Soft-deletes by default. With hard=true the record is removed. Products keep their categoryId.
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Param hard query bool false "Remove the record permanently"
// @Success 200 {object} DeleteCategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /category/{id} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	hard, err := parseHard(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"hard_delete": hard,
	})

	category, err := h.categorySvc.DeleteCategory(r.Context(), models.DeleteCategoryParams{
		CategoryID: id,
		Hard:       hard,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, DeleteCategoryResponse{
		Message:  "Category deleted successfully",
		Category: convertToCategoryResponse(category),
	})
}
