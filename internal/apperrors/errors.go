package apperrors

import (
	"fmt"
	"strings"
)

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// FieldIssue is a single problem with one input field.
type FieldIssue struct {
	Field   string
	Message string
}

// ValidationError carries one or more field issues. Field and Message
// mirror the first issue.
type ValidationError struct {
	Field   string
	Message string
	Issues  []FieldIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) > 1 {
		parts := make([]string, len(e.Issues))
		for i, issue := range e.Issues {
			parts[i] = formatIssue(issue.Field, issue.Message)
		}
		return strings.Join(parts, "; ")
	}
	return formatIssue(e.Field, e.Message)
}

func formatIssue(field, message string) string {
	if field != "" {
		return fmt.Sprintf("%s: %s", field, message)
	}
	return message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Issues:  []FieldIssue{{Field: field, Message: message}},
	}
}

// NewValidationErrors builds a ValidationError from several issues.
// It returns nil when issues is empty.
func NewValidationErrors(issues []FieldIssue) *ValidationError {
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{
		Field:   issues[0].Field,
		Message: issues[0].Message,
		Issues:  issues,
	}
}

type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
	}
	return fmt.Sprintf("%s conflict", e.Resource)
}

func NewConflictError(resource, reason string) *ConflictError {
	return &ConflictError{Resource: resource, Reason: reason}
}

type ServiceUnavailableError struct {
	Message string
}

func (e *ServiceUnavailableError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("service unavailable: %s", e.Message)
	}
	return "service unavailable"
}

func NewServiceUnavailableError(message string) *ServiceUnavailableError {
	return &ServiceUnavailableError{Message: message}
}

type TimeoutError struct {
	Operation string
}

func (e *TimeoutError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("operation timed out: %s", e.Operation)
	}
	return "operation timed out"
}

func NewTimeoutError(operation string) *TimeoutError {
	return &TimeoutError{Operation: operation}
}
