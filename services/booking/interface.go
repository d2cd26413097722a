package booking

import (
	"context"
	"time"

	appointmentRepo "vallit/database/repository/appointment"
	"vallit/models"
	"vallit/services/calendar"
	"vallit/services/meeting"
	"vallit/services/notification"
)

// AppointmentService books a consultation across the external systems and
// returns the persisted (or placeholder) record.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
}

// ReminderScheduler queues a reminder dispatch for a future instant.
type ReminderScheduler interface {
	Schedule(payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultAppointmentService implements AppointmentService.
//
// Only validation failures surface to the caller: every external dependency
// here is best-effort, and its failure degrades the result instead of
// aborting the booking.
type DefaultAppointmentService struct {
	Repo         appointmentRepo.AppointmentRepository
	MeetingSvc   meeting.MeetingService
	Notifier     notification.NotificationService
	CalendarSync calendar.SyncService
	Reminders    ReminderScheduler // optional
}
