package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"

	"github.com/catalogapp/catalog/internal/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product to create"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /product [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
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
		"product_name": req.Name,
	})

	serviceReq := models.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
	}
	if req.Quantity != nil {
		serviceReq.Quantity = *req.Quantity
	}

	product, err := h.productSvc.CreateProduct(r.Context(), &serviceReq)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Created(w, convertToProductResponse(product))
}

// ListProducts godoc
// @Summary List live products
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (1-100)" default(10)
// @Param search query string false "Case-insensitive match on name or description"
// @Success 200 {object} ProductListResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListQuery(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	result, err := h.productSvc.ListProducts(r.Context(), filter)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	responses := make([]ProductResponse, len(result.Products))
	for i, p := range result.Products {
		responses[i] = convertToProductResponse(p)
	}

	Success(w, NewListResponse(responses, result.Pagination))
}

// GetProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.productSvc.GetProduct(r.Context(), models.GetProductParams{
		ProductID: id,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(product))
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body UpdateProductRequest true "Fields to change"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		InvalidBody(w, r, err)
		return
	}

	req.normalize()
	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), &models.UpdateProductRequest{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(product))
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Soft-deletes by default. With hard=true the record is removed.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param hard query bool false "Remove the record permanently"
// @Success 200 {object} DeleteProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	hard, err := parseHard(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"hard_delete": hard,
	})

	product, err := h.productSvc.DeleteProduct(r.Context(), models.DeleteProductParams{
		ProductID: id,
		Hard:      hard,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, DeleteProductResponse{
		Message: "Product deleted successfully",
		Product: convertToProductResponse(product),
	})
}
