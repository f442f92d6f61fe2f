package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/movesure/dispatch/internal/pkg/models"
)

// DispatchUC defines the interface for dispatch business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/movesure/dispatch/services/dispatch DispatchUC
type DispatchUC interface {
	// Dispatch enriches a confirmed booking for the assigned driver and
	// produces a notification. It never returns an error for provider or
	// storage failures: providers degrade to fallback data and a failed
	// persist yields a nil notification with a nil error.
	Dispatch(ctx context.Context, booking *models.Booking, driverID string, notifType models.NotificationType) (*models.DispatchNotification, error)

	MarkRead(ctx context.Context, notificationID uuid.UUID) error
	ListUnread(ctx context.Context, driverID string) ([]models.DispatchNotification, error)
	ListHistory(ctx context.Context, driverID string, limit int) ([]models.DispatchNotification, error)
}
