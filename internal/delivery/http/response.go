package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tradeledger/internal/apperror"
)

// writeError maps an application error to its HTTP status and the
// `{"error": "..."}` body. Unrecognized errors become a generic 500 so
// internal detail never leaks to clients.
func writeError(c echo.Context, err error) error {
	if appErr, ok := apperror.FromError(err); ok {
		return c.JSON(appErr.StatusCode(), appErr.ToResponse())
	}
	return c.JSON(http.StatusInternalServerError, apperror.ErrorResponse{Error: "internal server error"})
}
