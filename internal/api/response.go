package api

import "github.com/catalogapp/catalog/internal/models"

// ListResponse wraps collection responses with pagination metadata.
// @Description Collection response with pagination
type ListResponse struct {
	Data       any                `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse summarizes the page that was returned.
// @Description Pagination summary
type PaginationResponse struct {
	Page       int   `json:"page" example:"1"`
	PageSize   int   `json:"pageSize" example:"10"`
	TotalPage  int   `json:"totalPage" example:"10"`
	TotalCount int64 `json:"totalCount" example:"100"`
}

// CategoryListResponse documents ListResponse for categories.
// @Description Paginated categories
type CategoryListResponse struct {
	Data       []CategoryResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// ProductListResponse documents ListResponse for products.
// @Description Paginated products
type ProductListResponse struct {
	Data       []ProductResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// MessageResponse is a plain acknowledgement.
// @Description Message response
type MessageResponse struct {
	Message string `json:"message" example:"Catalog API is running"`
}

// HealthResponse reports store reachability.
// @Description Health status
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ErrorResponse represents all API error responses.
// @Description Standard error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the specifics of an API error.
// @Description Error details
type ErrorDetail struct {
	Type    string        `json:"type"`
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Param   string        `json:"param,omitempty"`
	Issues  []IssueDetail `json:"issues,omitempty"`
}

// IssueDetail describes one invalid field.
// @Description Field-level validation issue
type IssueDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewListResponse(data any, p models.Pagination) *ListResponse {
	return &ListResponse{
		Data: data,
		Pagination: PaginationResponse{
			Page:       p.Page,
			PageSize:   p.PageSize,
			TotalPage:  p.TotalPage,
			TotalCount: p.TotalCount,
		},
	}
}

func NewErrorResponse(httpStatusCode int, code, message, param string, issues []IssueDetail) *ErrorResponse {
	errorType := "api_error"
	if httpStatusCode >= 400 && httpStatusCode < 500 {
		errorType = "invalid_request_error"
	}

	if code == "" {
		code = "unknown_error"
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Type:    errorType,
			Code:    code,
			Message: message,
			Param:   param,
			Issues:  issues,
		},
	}
}
