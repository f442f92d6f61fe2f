package handler

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/movesure/dispatch/internal/pkg/constants"
	"github.com/movesure/dispatch/internal/pkg/logger"
	"github.com/movesure/dispatch/internal/pkg/models"
)

// HandleDriverSocket upgrades a driver connection and keeps the session
// registered for push delivery until the driver disconnects
func (h *dispatchHandler) HandleDriverSocket(c echo.Context) error {
	return h.wsManager.HandleConnection(c, h.handleDriverSession)
}

func (h *dispatchHandler) handleDriverSession(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.wsManager.AddClient(client)
	defer h.wsManager.RemoveClient(client.DriverID)

	logger.Info("Driver session connected",
		logger.String("driver_id", client.DriverID))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Info("Driver session disconnected",
					logger.String("driver_id", client.DriverID))
				return nil
			}
			logger.Warn("Error reading driver session message",
				logger.String("driver_id", client.DriverID),
				logger.Err(err))
			return nil
		}

		if err := h.handleDriverMessage(client, conn, &msg); err != nil {
			logger.Warn("Error handling driver session message",
				logger.String("driver_id", client.DriverID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *dispatchHandler) handleDriverMessage(client *models.WebSocketClient, conn *websocket.Conn, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.wsManager.SendMessage(conn, constants.EventPong, nil)
	case constants.EventNotificationRead:
		return h.handleNotificationRead(client, conn, msg.Data)
	default:
		return h.wsManager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Unknown event type")
	}
}

// notificationReadRequest is the payload a driver sends to acknowledge
// a notification over the socket
type notificationReadRequest struct {
	NotificationID string `json:"notification_id"`
}

func (h *dispatchHandler) handleNotificationRead(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var req notificationReadRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.wsManager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Invalid notification read payload")
	}

	notificationID, err := uuid.Parse(req.NotificationID)
	if err != nil {
		return h.wsManager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Invalid notification ID")
	}

	if err := h.dispatchUC.MarkRead(context.Background(), notificationID); err != nil {
		return h.wsManager.SendErrorMessage(conn, constants.ErrorInternalError, "Failed to mark notification as read")
	}

	return h.wsManager.SendMessage(conn, constants.EventNotificationRead, req)
}
