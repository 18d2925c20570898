package banking

import (
	"errors"
	"net/http"
)

// StatusCode maps the outcome of a command to the matching HTTP status code
func StatusCode(err error) int {
	var validationErr *ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr),
		errors.Is(err, ErrCannotSendMoneyToSelf),
		errors.Is(err, ErrAmountOutOfRange),
		errors.Is(err, ErrCurrencyMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAccountIsBlocked),
		errors.Is(err, ErrOverdraftLimitExceeded),
		errors.Is(err, ErrAccountIsBankOwn):
		return http.StatusForbidden
	case errors.Is(err, ErrAccountAlreadyExists),
		errors.Is(err, ErrAccountAlreadyBlocked),
		errors.Is(err, ErrAccountNotBlocked):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}
