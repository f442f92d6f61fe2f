package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/movesure/dispatch/internal/pkg/logger"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs them with a stack trace and returns a 500 to the caller
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	requestID := c.Response().Header().Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
	}

	zapLogger.WithFields(map[string]interface{}{
		"panic_value": fmt.Sprintf("%v", r),
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": string(debug.Stack()),
		"method":      c.Request().Method,
		"path":        c.Request().URL.Path,
		"client_ip":   c.RealIP(),
		"request_id":  requestID,
	}).Error("Panic recovered")

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}
}
