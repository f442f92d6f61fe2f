package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates request-logging middleware for the Echo framework
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			status := c.Response().Status
			entry := logger.Logger.With(
				String("method", c.Request().Method),
				String("path", path),
				String("client_ip", c.RealIP()),
				String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				Int("status", status),
				Duration("latency", latency),
			)

			switch {
			case status >= 500:
				if err != nil {
					entry = entry.With(Err(err))
				}
				entry.Error("Server error")
			case status >= 400:
				entry.Warn("Client error")
			default:
				entry.Info("Request processed")
			}

			return err
		}
	}
}
