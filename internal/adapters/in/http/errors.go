package http

import (
	"errors"
	"net/http"

	"bakery/internal/adapters/in/http/api"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps use case errors to response codes. Aggregation failures are
// checked first since they may wrap a not-found cause.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrAggregationFailed):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrIllegalTransition), errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusOf(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}

	return ctx.JSON(code, api.Error{Code: code, Message: message})
}
