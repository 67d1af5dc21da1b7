// Package response renders the JSON envelopes returned by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "kioskdash/internal/delivery/context"
	domainerrors "kioskdash/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.NewSuccessResponse(data, deliverycontext.GetRequestID(c)))
}

// Error returns an error response. Details are dropped for 5xx errors and for
// authentication/authorization failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.NewErrorResponse(errorCode, message, details, deliverycontext.GetRequestID(c)))
}

// BindingError returns a 400 for a request that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
