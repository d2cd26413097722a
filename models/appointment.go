package models

import "time"

// BookingRequest is the inbound payload for booking a consultation.
type BookingRequest struct {
	CompanyID   string `json:"company_id"`
	SessionID   string `json:"session_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateTime    string `json:"date_time"`    // Requested start, ISO or "YYYY-MM-DD HH:MM:SS"
	Purpose     string `json:"purpose"`      // Free-text purpose, defaults to "General"
	CompanyName string `json:"company_name"` // Optional customer company
	TopicType   string `json:"topic_type"`   // Consultation category, defaults to "General"
}

// Appointment represents a persisted consultation booking.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`                             // Unique appointment identifier (UUID, or "offline-id" when the store write failed)
	CompanyID     string    `bson:"company_id" json:"company_id"`             // Tenant the booking belongs to
	ChatSessionID string    `bson:"chat_session_id" json:"chat_session_id"`   // Originating chat session
	CustomerName  string    `bson:"customer_name" json:"customer_name"`       // Customer full name
	CustomerEmail string    `bson:"customer_email" json:"customer_email"`     // Customer email address
	Date          string    `bson:"appointment_date" json:"appointment_date"` // Start time in ISO form (raw request string if unparseable)
	Purpose       string    `bson:"purpose" json:"purpose"`                   // Enriched purpose: "[Type] purpose | Company: X | Zoom: url"
	Status        string    `bson:"status" json:"status"`                     // "confirmed" on insert, never mutated by this service
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`             // Timestamp when the record was created
}

// ReminderPayload carries the facts the reminder worker needs to compose
// the reminder mail without a store round trip.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Topic         string `json:"topic"`
	DateTime      string `json:"dateTime"`
	JoinURL       string `json:"joinUrl"`
}
