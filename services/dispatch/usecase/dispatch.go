package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/movesure/dispatch/internal/pkg/logger"
	"github.com/movesure/dispatch/internal/pkg/models"
	"github.com/movesure/dispatch/services/dispatch"
)

// ErrNilBooking is returned when Dispatch is called without a booking.
// It is the only error the orchestrator ever returns.
var ErrNilBooking = errors.New("dispatch: booking must not be nil")

// dispatchUC implements the dispatch.DispatchUC interface
type dispatchUC struct {
	cfg      *models.Config
	repo     dispatch.NotificationRepo
	gw       dispatch.DispatchGW
	enricher *EnvironmentalEnricher
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	repo dispatch.NotificationRepo,
	gw dispatch.DispatchGW,
	enricher *EnvironmentalEnricher,
) dispatch.DispatchUC {
	return &dispatchUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		enricher: enricher,
	}
}

// Dispatch runs the full enrichment pipeline for a confirmed booking and
// its assigned driver: zone classification, concurrent environmental
// enrichment, crew sizing, priority and message composition, persistence,
// then best-effort realtime delivery. Provider and storage failures never
// reach the caller; a failed persist yields a nil notification.
func (uc *dispatchUC) Dispatch(ctx context.Context, booking *models.Booking, driverID string, notifType models.NotificationType) (*models.DispatchNotification, error) {
	if booking == nil {
		return nil, ErrNilBooking
	}

	zone, pickupZone, dropoffZone := ClassifyBookingZones(booking)

	weather, traffic, route := uc.enricher.Enrich(ctx, booking)

	crew := RecommendCrew(booking)

	priority := ComposePriority(zone, weather, traffic)
	title := ComposeTitle(booking)
	message := ComposeMessage(booking, zone, weather, traffic)

	notification := &models.DispatchNotification{
		ID:        uuid.New(),
		Type:      notifType,
		Title:     title,
		Message:   message,
		Priority:  priority,
		DriverID:  driverID,
		BookingID: booking.ID,
		Payload: models.DispatchPayload{
			BookingReference: booking.Reference,
			ScheduledAt:      booking.ScheduledAt,
			TotalPrice:       booking.TotalPrice,
			Zone:             zone,
			PickupZone:       pickupZone,
			DropoffZone:      dropoffZone,
			Weather:          weather,
			Traffic:          traffic,
			Route:            route,
			Crew:             &crew,
		},
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.Insert(ctx, notification); err != nil {
		logger.Error("Failed to persist dispatch notification",
			logger.String("booking_ref", booking.Reference),
			logger.String("driver_id", driverID),
			logger.Err(err))
		return nil, nil
	}

	// Delivery beyond this point is strictly best-effort
	uc.gw.PushNotification(driverID, notification)

	if err := uc.gw.PublishNotificationCreated(ctx, models.NotificationCreatedEvent{
		NotificationID: notification.ID,
		DriverID:       driverID,
		BookingID:      booking.ID,
		Priority:       notification.Priority,
		CreatedAt:      notification.CreatedAt,
	}); err != nil {
		logger.Warn("Failed to publish notification created event",
			logger.String("notification_id", notification.ID.String()),
			logger.Err(err))
	}

	logger.Info("Dispatch notification created",
		logger.String("notification_id", notification.ID.String()),
		logger.String("booking_ref", booking.Reference),
		logger.String("driver_id", driverID),
		logger.String("priority", string(notification.Priority)))

	return notification, nil
}

// MarkRead marks a notification as read
func (uc *dispatchUC) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	return uc.repo.MarkRead(ctx, notificationID)
}

// ListUnread returns a driver's unread notifications
func (uc *dispatchUC) ListUnread(ctx context.Context, driverID string) ([]models.DispatchNotification, error) {
	return uc.repo.ListUnread(ctx, driverID)
}

// ListHistory returns a driver's notification history, newest first
func (uc *dispatchUC) ListHistory(ctx context.Context, driverID string, limit int) ([]models.DispatchNotification, error) {
	return uc.repo.ListHistory(ctx, driverID, limit)
}
