package gateway

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/movesure/dispatch/internal/pkg/constants"
	"github.com/movesure/dispatch/internal/pkg/models"
	wspkg "github.com/movesure/dispatch/internal/pkg/websocket"
	"github.com/stretchr/testify/assert"
)

func TestRealtimeGW_PushWithoutSessionIsSwallowed(t *testing.T) {
	manager := wspkg.NewManager(models.JWTConfig{Secret: "test-secret"})
	gw := NewRealtimeGW(manager, nil, "")

	notification := &models.DispatchNotification{
		ID:   uuid.New(),
		Type: models.NotificationNewBooking,
	}

	// No registered session for the driver; delivery must not panic or block
	assert.NotPanics(t, func() {
		gw.PushNotification("driver-absent", notification)
	})
}

func TestRealtimeGW_PushWithNilManager(t *testing.T) {
	gw := NewRealtimeGW(nil, nil, "")

	assert.NotPanics(t, func() {
		gw.PushNotification("driver-1", &models.DispatchNotification{})
	})
}

func TestRealtimeGW_EventMapping(t *testing.T) {
	tests := []struct {
		notifType models.NotificationType
		want      string
	}{
		{models.NotificationNewBooking, constants.EventJobAssigned},
		{models.NotificationBookingUpdated, constants.EventJobUpdated},
		{models.NotificationBookingCancelled, constants.EventJobCancelled},
	}

	for _, tt := range tests {
		event, ok := wsEvents[tt.notifType]
		assert.True(t, ok)
		assert.Equal(t, tt.want, event)
	}
}

func TestRealtimeGW_PublishWithoutProducer(t *testing.T) {
	gw := NewRealtimeGW(nil, nil, "")

	err := gw.PublishNotificationCreated(context.Background(), models.NotificationCreatedEvent{
		NotificationID: uuid.New(),
		DriverID:       "driver-1",
	})

	assert.NoError(t, err)
}

func TestRealtimeGW_DefaultTopic(t *testing.T) {
	gw := NewRealtimeGW(nil, nil, "")
	assert.Equal(t, constants.TopicNotificationCreated, gw.topic)

	gw = NewRealtimeGW(nil, nil, "custom.topic")
	assert.Equal(t, "custom.topic", gw.topic)
}
