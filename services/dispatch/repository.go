package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/movesure/dispatch/internal/pkg/models"
)

// NotificationRepo defines the interface for notification data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/movesure/dispatch/services/dispatch NotificationRepo
type NotificationRepo interface {
	Insert(ctx context.Context, notification *models.DispatchNotification) error
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
	ListUnread(ctx context.Context, driverID string) ([]models.DispatchNotification, error)
	ListHistory(ctx context.Context, driverID string, limit int) ([]models.DispatchNotification, error)
}
