package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"expense-manager/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a handler panic into a SYSTEM_001 error envelope
// instead of dropping the connection. The panic value and stack are logged
// with the request trace ID; the client sees only the standard response.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = respondToPanic(c, r)
				}
			}()

			return next(c)
		}
	}
}

func respondToPanic(c echo.Context, cause interface{}) error {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("Panic recovered",
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", cause),
		"stack_trace", string(debug.Stack()),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	return c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
}
