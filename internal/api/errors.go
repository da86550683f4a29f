package api

import (
	"errors"
	"net/http"

	"github.com/catalogapp/catalog/internal/apperrors"
)

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		BadRequest(w, r, validationErr)
		return
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		NotFound(w, r, err, err.Error())
		return
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		Conflict(w, r, err, conflictErr.Reason)
		return
	}

	var timeoutErr *apperrors.TimeoutError
	if errors.As(err, &timeoutErr) {
		GatewayTimeout(w, r, err)
		return
	}

	var unavailableErr *apperrors.ServiceUnavailableError
	if errors.As(err, &unavailableErr) {
		ServiceUnavailable(w, r, err)
		return
	}

	InternalError(w, r, err)
}
