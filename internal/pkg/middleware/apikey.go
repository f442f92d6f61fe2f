package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/movesure/dispatch/internal/pkg/models"
	"github.com/movesure/dispatch/internal/utils"
)

const (
	// APIKeyHeader is the header internal callers authenticate with
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates the API key for service-to-service calls
type APIKeyMiddleware struct {
	cfg *models.APIKeyConfig
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// Validate checks the API key on incoming internal requests
func (m *APIKeyMiddleware) Validate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if m.cfg.BookingServiceKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.BookingServiceKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
