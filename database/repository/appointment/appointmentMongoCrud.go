package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"vallit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new appointment document and returns the stored record.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.apptColl.InsertOne(ctxWithTimeout, appt); err != nil {
		return nil, fmt.Errorf("error creating appointment: %w", err)
	}
	return appt, nil
}

// GetByID retrieves an appointment by its ID.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.apptColl.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("appointment with id %s not found", id)
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

// ListBySession retrieves all appointments created from a given chat session,
// newest first.
func (repo *MongoAppointmentRepo) ListBySession(ctx context.Context, sessionID string) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.apptColl.Find(ctxWithTimeout, bson.M{"chat_session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments for session %s: %w", sessionID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appts []models.Appointment
	for cursor.Next(ctxWithTimeout) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		appts = append(appts, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return appts, nil
}
