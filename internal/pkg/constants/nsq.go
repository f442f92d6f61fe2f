package constants

// NSQ topics
const (
	// Consumed from the booking service when a booking completes
	TopicBookingCompleted = "booking.completed"

	// Published after a dispatch notification has been persisted
	TopicNotificationCreated = "notification.created"
)

// NSQ channels
const (
	ChannelDispatchService = "dispatch-service"
)
