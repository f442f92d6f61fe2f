package gateway

import (
	"context"

	"github.com/movesure/dispatch/internal/pkg/constants"
	"github.com/movesure/dispatch/internal/pkg/logger"
	"github.com/movesure/dispatch/internal/pkg/models"
	nsqpkg "github.com/movesure/dispatch/internal/pkg/nsq"
	"github.com/movesure/dispatch/internal/pkg/websocket"
)

// RealtimeGW delivers produced notifications to drivers and downstream
// consumers. Both channels are best-effort.
type RealtimeGW struct {
	wsManager *websocket.Manager
	producer  *nsqpkg.Producer
	topic     string
}

// NewRealtimeGW creates a new realtime gateway
func NewRealtimeGW(wsManager *websocket.Manager, producer *nsqpkg.Producer, topic string) *RealtimeGW {
	if topic == "" {
		topic = constants.TopicNotificationCreated
	}
	return &RealtimeGW{
		wsManager: wsManager,
		producer:  producer,
		topic:     topic,
	}
}

// wsEvents maps notification types to websocket event names
var wsEvents = map[models.NotificationType]string{
	models.NotificationNewBooking:       constants.EventJobAssigned,
	models.NotificationBookingUpdated:   constants.EventJobUpdated,
	models.NotificationBookingCancelled: constants.EventJobCancelled,
}

// PushNotification delivers the notification to the driver's live session.
// A missing session or write failure is logged inside the manager and
// swallowed; there is no synchronous retry.
func (g *RealtimeGW) PushNotification(driverID string, notification *models.DispatchNotification) {
	if g.wsManager == nil {
		return
	}

	event, ok := wsEvents[notification.Type]
	if !ok {
		event = constants.EventJobAssigned
	}

	g.wsManager.NotifyDriver(driverID, event, notification)
}

// PublishNotificationCreated emits a notification created event to NSQ
func (g *RealtimeGW) PublishNotificationCreated(ctx context.Context, event models.NotificationCreatedEvent) error {
	if g.producer == nil {
		logger.Debug("NSQ producer not configured, skipping notification event")
		return nil
	}
	return g.producer.Publish(g.topic, event)
}
