package appointmentRepo

import (
	"context"

	"vallit/models"
)

// AppointmentRepository defines the data access methods used by the booking pipeline.
type AppointmentRepository interface {
	// Create persists a new appointment record and returns the inserted row.
	Create(ctx context.Context, appt *models.Appointment) (*models.Appointment, error)
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListBySession retrieves all appointments booked from a chat session.
	ListBySession(ctx context.Context, sessionID string) ([]models.Appointment, error)
}
