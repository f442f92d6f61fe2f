package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/movesure/dispatch/internal/pkg/logger"
	"github.com/movesure/dispatch/internal/utils"
)

// ListUnread handles requests for a driver's unread notifications
func (h *dispatchHandler) ListUnread(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	notifications, err := h.dispatchUC.ListUnread(c.Request().Context(), driverID)
	if err != nil {
		logger.Error("Failed to list unread notifications",
			logger.Err(err),
			logger.String("driver_id", driverID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve notifications")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Unread notifications retrieved", notifications)
}

// ListHistory handles requests for a driver's notification history
func (h *dispatchHandler) ListHistory(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "Invalid limit parameter")
		}
		limit = parsed
	}

	notifications, err := h.dispatchUC.ListHistory(c.Request().Context(), driverID, limit)
	if err != nil {
		logger.Error("Failed to list notification history",
			logger.Err(err),
			logger.String("driver_id", driverID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve notifications")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification history retrieved", notifications)
}

// MarkRead handles requests to mark a notification as read
func (h *dispatchHandler) MarkRead(c echo.Context) error {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	if err := h.dispatchUC.MarkRead(c.Request().Context(), notificationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.NotFoundResponse(c, "Notification not found")
		}
		logger.Error("Failed to mark notification as read",
			logger.Err(err),
			logger.String("notification_id", notificationID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to mark notification as read")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}
