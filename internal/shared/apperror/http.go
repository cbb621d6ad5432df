package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport-level shape handlers write out. Details
// stays nil for internal failures so raw error text never reaches the
// client; the original error is logged at the call site instead.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to an HTTPError. AppError values map directly,
// everything else collapses to a generic 500.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
