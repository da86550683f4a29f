package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/catalogapp/catalog/internal/apperrors"
)

var errInvalidID = apperrors.NewValidationError("id", "must be a valid identifier")

// storeError wraps an unexpected store failure. Deadlines become timeouts
// so the API can answer 504 instead of 500.
func storeError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
