package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps domain and application errors to HTTP status codes.
// Unrecognized errors become 500 without leaking their message.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, commands.ErrReviewAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidCoupon),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrProductUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the uniform error body for the given failure.
func respondError(ctx echo.Context, err error) error {
	code := statusOf(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
