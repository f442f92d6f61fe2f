package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Dispatch events
	EventJobAssigned      = "job_assigned"
	EventJobUpdated       = "job_updated"
	EventJobCancelled     = "job_cancelled"
	EventNotificationRead = "notification_read"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)
