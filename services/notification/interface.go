package notification

import (
	"context"

	"vallit/models"
)

// ConfirmationParams carries everything needed to compose the customer and
// operator confirmation mails for one booking.
type ConfirmationParams struct {
	Email       string // customer address
	Name        string // customer full name
	Topic       string // display topic, e.g. "WTM Coaching: Strategy"
	DateTime    string // ISO start time (raw request string if unparseable)
	JoinURL     string // Zoom join URL or the pending sentinel
	ICS         []byte // calendar invite, attached to both mails
	CompanyName string // optional
	SessionID   string // optional
}

// NotificationService delivers booking mails over the configured relay.
// A nil return means every message of the dispatch was sent; any dial,
// auth or send failure is reported as a single error with no partial-send
// state distinguished.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, p ConfirmationParams) error
	SendReminder(ctx context.Context, p models.ReminderPayload) error
}
