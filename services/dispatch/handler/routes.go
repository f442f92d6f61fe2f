package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/movesure/dispatch/internal/pkg/middleware"
)

// RegisterRoutes registers all HTTP routes for the dispatch service
func (h *dispatchHandler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKey.Validate())

	internal.GET("/drivers/:id/notifications/unread", h.ListUnread)
	internal.GET("/drivers/:id/notifications", h.ListHistory)
	internal.POST("/notifications/:id/read", h.MarkRead)

	// Driver websocket sessions authenticate with their own bearer token
	e.GET("/ws/drivers", h.HandleDriverSocket)
}
