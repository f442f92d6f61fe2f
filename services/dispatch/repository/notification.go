package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/movesure/dispatch/internal/pkg/models"
)

// NotificationRepo provides postgres access to dispatch notifications
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{
		cfg: cfg,
		db:  db,
	}
}

// notificationRow mirrors the notifications table; the payload column is
// JSONB and is marshalled on the way in and out
type notificationRow struct {
	ID        uuid.UUID  `db:"id"`
	Type      string     `db:"type"`
	Title     string     `db:"title"`
	Message   string     `db:"message"`
	Priority  string     `db:"priority"`
	DriverID  string     `db:"driver_id"`
	BookingID uuid.UUID  `db:"booking_id"`
	Payload   []byte     `db:"payload"`
	Read      bool       `db:"read"`
	ReadAt    *time.Time `db:"read_at"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r *notificationRow) toModel() (models.DispatchNotification, error) {
	n := models.DispatchNotification{
		ID:        r.ID,
		Type:      models.NotificationType(r.Type),
		Title:     r.Title,
		Message:   r.Message,
		Priority:  models.Priority(r.Priority),
		DriverID:  r.DriverID,
		BookingID: r.BookingID,
		Read:      r.Read,
		ReadAt:    r.ReadAt,
		CreatedAt: r.CreatedAt,
	}
	if len(r.Payload) > 0 {
		if err := json.Unmarshal(r.Payload, &n.Payload); err != nil {
			return n, fmt.Errorf("failed to unmarshal notification payload: %w", err)
		}
	}
	return n, nil
}

// Insert persists a new dispatch notification
func (r *NotificationRepo) Insert(ctx context.Context, notification *models.DispatchNotification) error {
	payload, err := json.Marshal(notification.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	query := `
		INSERT INTO notifications (
			id, type, title, message, priority,
			driver_id, booking_id, payload, read, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		notification.ID,
		notification.Type,
		notification.Title,
		notification.Message,
		notification.Priority,
		notification.DriverID,
		notification.BookingID,
		payload,
		notification.Read,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// MarkRead sets the read markers on a notification
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	query := `UPDATE notifications SET read = TRUE, read_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ListUnread returns a driver's unread notifications, newest first
func (r *NotificationRepo) ListUnread(ctx context.Context, driverID string) ([]models.DispatchNotification, error) {
	query := `
		SELECT id, type, title, message, priority,
			driver_id, booking_id, payload, read, read_at, created_at
		FROM notifications
		WHERE driver_id = $1 AND read = FALSE
		ORDER BY created_at DESC
	`

	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}

	return rowsToModels(rows)
}

// ListHistory returns a driver's notification history, newest first
func (r *NotificationRepo) ListHistory(ctx context.Context, driverID string, limit int) ([]models.DispatchNotification, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, type, title, message, priority,
			driver_id, booking_id, payload, read, read_at, created_at
		FROM notifications
		WHERE driver_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows, query, driverID, limit); err != nil {
		return nil, fmt.Errorf("failed to list notification history: %w", err)
	}

	return rowsToModels(rows)
}

func rowsToModels(rows []notificationRow) ([]models.DispatchNotification, error) {
	notifications := make([]models.DispatchNotification, 0, len(rows))
	for i := range rows {
		n, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}
