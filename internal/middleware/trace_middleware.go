package middleware

import (
	"context"

	"wiseBuy/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware assigns every request a trace id, carried in the request
// context and echoed back in the X-Trace-ID header.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get("X-Trace-ID")
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommend.TraceIDKey, tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-ID", tid)

			return next(c)
		}
	}
}
