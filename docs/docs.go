// Package docs holds the OpenAPI document served at /docs. It is kept in
// the layout swag emits and registered with swag the same way, but it is
// maintained by hand alongside the handler annotations in internal/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Store health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List live categories",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size (1-100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Case-insensitive match on name or description", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.CategoryListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/category": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [
                    {"description": "Category to create", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateCategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.CategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/category/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get a category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.CategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Update a category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.UpdateCategoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.CategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Soft-deletes by default. With hard=true the record is removed. Products keep their categoryId.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Remove the record permanently", "name": "hard", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DeleteCategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List live products",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size (1-100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Case-insensitive match on name or description", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ProductListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/product": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Create a product",
                "parameters": [
                    {"description": "Product to create", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/product/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Update a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.UpdateProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Soft-deletes by default. With hard=true the record is removed.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Remove the record permanently", "name": "hard", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DeleteProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.CategoryListResponse": {
            "description": "Paginated categories",
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/api.CategoryResponse"}},
                "pagination": {"$ref": "#/definitions/api.PaginationResponse"}
            }
        },
        "api.CategoryRefResponse": {
            "description": "Populated category details",
            "type": "object",
            "properties": {
                "_id": {"type": "string", "example": "507f1f77bcf86cd799439011"},
                "description": {"type": "string", "example": "Electronic devices and accessories"},
                "name": {"type": "string", "example": "Electronics"}
            }
        },
        "api.CategoryResponse": {
            "description": "Category resource",
            "type": "object",
            "properties": {
                "_id": {"type": "string", "example": "507f1f77bcf86cd799439011"},
                "createdAt": {"type": "string", "example": "2026-01-09T10:00:00Z"},
                "description": {"type": "string", "example": "Electronic devices and accessories"},
                "isDeleted": {"type": "boolean", "example": false},
                "name": {"type": "string", "example": "Electronics"},
                "updatedAt": {"type": "string", "example": "2026-01-09T10:00:00Z"}
            }
        },
        "api.CreateCategoryRequest": {
            "description": "Request payload for creating a category",
            "type": "object",
            "required": ["name"],
            "properties": {
                "description": {"type": "string", "maxLength": 1000, "example": "Electronic devices and accessories"},
                "name": {"type": "string", "maxLength": 255, "example": "Electronics"}
            }
        },
        "api.CreateProductRequest": {
            "description": "Request payload for creating a product",
            "type": "object",
            "required": ["categoryId", "name", "price"],
            "properties": {
                "categoryId": {"type": "string", "example": "507f1f77bcf86cd799439011"},
                "description": {"type": "string", "maxLength": 1000, "example": "Product description"},
                "name": {"type": "string", "maxLength": 255, "example": "Phone"},
                "price": {"type": "number", "minimum": 0, "example": 499.99},
                "quantity": {"type": "integer", "minimum": 0, "example": 5}
            }
        },
        "api.DeleteCategoryResponse": {
            "description": "Deleted category",
            "type": "object",
            "properties": {
                "category": {"$ref": "#/definitions/api.CategoryResponse"},
                "message": {"type": "string", "example": "Category deleted successfully"}
            }
        },
        "api.DeleteProductResponse": {
            "description": "Deleted product",
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Product deleted successfully"},
                "product": {"$ref": "#/definitions/api.ProductResponse"}
            }
        },
        "api.ErrorDetail": {
            "description": "Error details",
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "issues": {"type": "array", "items": {"$ref": "#/definitions/api.IssueDetail"}},
                "message": {"type": "string"},
                "param": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "api.ErrorResponse": {
            "description": "Standard error response",
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/api.ErrorDetail"}
            }
        },
        "api.HealthResponse": {
            "description": "Health status",
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"}
            }
        },
        "api.IssueDetail": {
            "description": "Field-level validation issue",
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "api.MessageResponse": {
            "description": "Message response",
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Catalog API is running"}
            }
        },
        "api.PaginationResponse": {
            "description": "Pagination summary",
            "type": "object",
            "properties": {
                "page": {"type": "integer", "example": 1},
                "pageSize": {"type": "integer", "example": 10},
                "totalCount": {"type": "integer", "example": 100},
                "totalPage": {"type": "integer", "example": 10}
            }
        },
        "api.ProductListResponse": {
            "description": "Paginated products",
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/api.ProductResponse"}},
                "pagination": {"$ref": "#/definitions/api.PaginationResponse"}
            }
        },
        "api.ProductResponse": {
            "description": "Product resource",
            "type": "object",
            "properties": {
                "_id": {"type": "string", "example": "507f1f77bcf86cd799439012"},
                "categoryId": {"$ref": "#/definitions/api.CategoryRefResponse"},
                "createdAt": {"type": "string", "example": "2026-01-09T10:00:00Z"},
                "description": {"type": "string", "example": "Product description"},
                "isDeleted": {"type": "boolean", "example": false},
                "name": {"type": "string", "example": "Phone"},
                "price": {"type": "number", "example": 499.99},
                "quantity": {"type": "integer", "example": 5},
                "updatedAt": {"type": "string", "example": "2026-01-09T10:00:00Z"}
            }
        },
        "api.UpdateCategoryRequest": {
            "description": "Request payload for updating a category; every field is optional",
            "type": "object",
            "properties": {
                "description": {"type": "string", "maxLength": 1000, "example": "Updated description"},
                "name": {"type": "string", "maxLength": 255, "minLength": 1, "example": "Updated Category"}
            }
        },
        "api.UpdateProductRequest": {
            "description": "Request payload for updating a product; every field is optional",
            "type": "object",
            "properties": {
                "categoryId": {"type": "string", "minLength": 1, "example": "507f1f77bcf86cd799439011"},
                "description": {"type": "string", "maxLength": 1000, "example": "Updated description"},
                "name": {"type": "string", "maxLength": 255, "minLength": 1, "example": "Updated Product"},
                "price": {"type": "number", "minimum": 0, "example": 149.99},
                "quantity": {"type": "integer", "minimum": 0, "example": 50}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Catalog API",
	Description:      "Products and categories with pagination, search and soft delete.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
