package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"

	"github.com/catalogapp/catalog/internal/apperrors"
)

const (
	codeValidation         = "validation_error"
	codeInvalidBody        = "invalid_body"
	codeNotFound           = "not_found"
	codeConflict           = "conflict"
	codeTimeout            = "timeout"
	codeServiceUnavailable = "service_unavailable"
	codeInternal           = "internal_error"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, code, message, param string, issues []IssueDetail) {
	canonlog.AddRequestError(r.Context(), err)
	sanitizedMessage := sanitizeErrorMessage(message, statusCode)
	renderJSON(w, statusCode, NewErrorResponse(statusCode, code, sanitizedMessage, param, issues))
}

func sanitizeErrorMessage(message string, statusCode int) string {
	lowerMsg := strings.ToLower(message)

	if strings.Contains(lowerMsg, "sql") ||
		strings.Contains(lowerMsg, "database") ||
		strings.Contains(lowerMsg, "postgres") ||
		strings.Contains(lowerMsg, "mongo") ||
		strings.Contains(lowerMsg, "redis") {
		if statusCode >= 500 {
			return "An internal error occurred"
		}
		return "Invalid request"
	}

	if statusCode >= 500 {
		return "An internal error occurred"
	}

	return message
}

func issueDetails(err *apperrors.ValidationError) []IssueDetail {
	issues := make([]IssueDetail, len(err.Issues))
	for i, issue := range err.Issues {
		issues[i] = IssueDetail{Field: issue.Field, Message: issue.Message}
	}
	return issues
}

func Success(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusCreated, data)
}

func BadRequest(w http.ResponseWriter, r *http.Request, err *apperrors.ValidationError) {
	renderError(w, r, http.StatusBadRequest, err, codeValidation, err.Error(), err.Field, issueDetails(err))
}

// InvalidBody reports a request body that could not be decoded.
func InvalidBody(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		renderError(w, r, http.StatusBadRequest, err, codeInvalidBody, validationErr.Error(), validationErr.Field, issueDetails(validationErr))
		return
	}
	renderError(w, r, http.StatusBadRequest, err, codeInvalidBody, "request body is invalid", "", nil)
}

func NotFound(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusNotFound, err, codeNotFound, message, "", nil)
}

func Conflict(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusConflict, err, codeConflict, message, "", nil)
}

func GatewayTimeout(w http.ResponseWriter, r *http.Request, err error) {
	renderError(w, r, http.StatusGatewayTimeout, err, codeTimeout, "request timed out", "", nil)
}

func ServiceUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	renderError(w, r, http.StatusServiceUnavailable, err, codeServiceUnavailable, "service unavailable", "", nil)
}

func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	renderError(w, r, http.StatusInternalServerError, err, codeInternal, "internal server error", "", nil)
}
