package handler

import (
	"context"
	"fmt"

	"github.com/movesure/dispatch/internal/pkg/logger"
	"github.com/movesure/dispatch/internal/pkg/models"
	nsqpkg "github.com/movesure/dispatch/internal/pkg/nsq"
)

// InitNSQConsumers initializes all NSQ consumers for the dispatch service
func (h *dispatchHandler) InitNSQConsumers() ([]*nsqpkg.Consumer, error) {
	consumer, err := nsqpkg.NewConsumer(
		h.cfg.NSQ.BookingTopic,
		h.cfg.NSQ.BookingChannel,
		h.handleBookingCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize booking completed consumer: %w", err)
	}

	if h.cfg.NSQ.LookupdAddress != "" {
		err = consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddress)
	} else {
		err = consumer.ConnectToNSQD(h.cfg.NSQ.NSQDAddress)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect booking completed consumer: %w", err)
	}

	return []*nsqpkg.Consumer{consumer}, nil
}

// handleBookingCompleted processes booking completed events by enriching
// the booking and dispatching a notification to the assigned driver
func (h *dispatchHandler) handleBookingCompleted(msg []byte) error {
	var event models.BookingCompletedEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Failed to unmarshal booking completed event",
			logger.Err(err))
		// A malformed message will never succeed, ack it
		return nil
	}

	notifType := event.Type
	if notifType == "" {
		notifType = models.NotificationNewBooking
	}

	notification, err := h.dispatchUC.Dispatch(context.Background(), &event.Booking, event.DriverID, notifType)
	if err != nil {
		logger.Error("Failed to dispatch booking",
			logger.Err(err),
			logger.String("booking_id", event.Booking.ID.String()),
			logger.String("driver_id", event.DriverID))
		return nil
	}

	if notification == nil {
		// Persist failed and was already logged. Acking avoids a redelivery
		// producing duplicate notifications for the same booking.
		return nil
	}

	logger.Info("Booking dispatched to driver",
		logger.String("booking_reference", event.Booking.Reference),
		logger.String("driver_id", event.DriverID),
		logger.String("notification_id", notification.ID.String()))
	return nil
}
