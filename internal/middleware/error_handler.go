package middleware

import (
	"errors"
	"net/http"

	"wiseBuy/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler maps uncaught handler errors to the {"error": msg} shape.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	logger.Error("http error", "error", err, "path", c.Path(), "status", code)

	if jsonErr := c.JSON(code, map[string]string{"error": message}); jsonErr != nil {
		logger.Error("failed to write error response", "error", jsonErr)
	}
}
