package booking

import (
	"context"
	"fmt"
	"time"

	"vallit/models"
	"vallit/services/calendar"
	"vallit/services/notification"
	"vallit/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// Join URL substituted when the meeting provider call fails, so the
	// booking can proceed uniformly through persistence and notification.
	pendingJoinURL = "Pending (Zoom Error)"
	// Record ID substituted when the store write fails.
	offlineRecordID = "offline-id"

	organizerName  = "WTM Consulting"
	organizerEmail = "kontakt@wtm-consulting.de"
)

// CreateAppointment runs the booking pipeline: validate, create the Zoom
// meeting, persist the record, send the confirmation mails with the invite
// attached, queue the reminder and mirror the event into Google Calendar.
func (s *DefaultAppointmentService) CreateAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()
	logger.Info("Creating appointment",
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("dateTime", req.DateTime))

	purpose := req.Purpose
	if purpose == "" {
		purpose = "General"
	}
	topicType := req.TopicType
	if topicType == "" {
		topicType = "General"
	}

	// Fail fast: nothing external happens before validation passes.
	sched, err := ValidateSchedule(req.DateTime, time.Now())
	if err != nil {
		logger.Info("Booking rejected", zap.Error(err))
		return nil, err
	}
	if sched.Unvalidated {
		logger.Warn("Requested time not parseable; window and hours checks bypassed",
			zap.String("dateTime", req.DateTime))
	}

	displayTopic := fmt.Sprintf("WTM %s: %s", topicType, purpose)
	if req.CompanyName != "" {
		displayTopic += fmt.Sprintf(" (%s)", req.CompanyName)
	}

	joinURL := pendingJoinURL
	meetingID := ""
	if token, authErr := s.MeetingSvc.Authenticate(ctx); authErr != nil {
		logger.Warn("Zoom authentication failed, continuing without meeting", zap.Error(authErr))
	} else if res, createErr := s.MeetingSvc.CreateMeeting(ctx, token, displayTopic, sched.ISOTime); createErr != nil {
		logger.Warn("Zoom meeting creation failed, continuing without meeting", zap.Error(createErr))
	} else {
		joinURL = res.JoinURL
		meetingID = fmt.Sprintf("%d", res.ID)
		logger.Info("Zoom meeting created",
			zap.String("meetingId", meetingID),
			zap.String("startUrl", res.StartURL))
	}

	dbPurpose := fmt.Sprintf("[%s] %s", topicType, purpose)
	if req.CompanyName != "" {
		dbPurpose += fmt.Sprintf(" | Company: %s", req.CompanyName)
	}
	dbPurpose += fmt.Sprintf(" | Zoom: %s", joinURL)

	appt := &models.Appointment{
		ID:            uuid.New().String(),
		CompanyID:     req.CompanyID,
		ChatSessionID: req.SessionID,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		Date:          sched.ISOTime,
		Purpose:       dbPurpose,
		Status:        "confirmed",
		CreatedAt:     time.Now(),
	}

	record, dbErr := s.Repo.Create(ctx, appt)
	if dbErr != nil {
		// The customer notice outranks store consistency: keep going with
		// an in-memory placeholder and let the operator reconcile later.
		logger.Error("Failed to persist appointment, returning placeholder record", zap.Error(dbErr))
		placeholder := *appt
		placeholder.ID = offlineRecordID
		record = &placeholder
	}

	icsDescription := fmt.Sprintf("Topic: %s\nZoom: %s\nClient: %s\nCompany: %s",
		displayTopic, joinURL, req.Name, orNA(req.CompanyName))
	artifact := calendar.GenerateICS(sched.ISOTime, 60, displayTopic, icsDescription,
		joinURL, organizerName, organizerEmail)
	if artifact.Fallback {
		logger.Warn("Invite start time fell back to now", zap.String("dateTime", sched.ISOTime))
	}

	if notifyErr := s.Notifier.SendBookingConfirmation(ctx, notification.ConfirmationParams{
		Email:       req.Email,
		Name:        req.Name,
		Topic:       displayTopic,
		DateTime:    sched.ISOTime,
		JoinURL:     joinURL,
		ICS:         []byte(artifact.Content),
		CompanyName: req.CompanyName,
		SessionID:   req.SessionID,
	}); notifyErr != nil {
		logger.Error("Confirmation dispatch failed", zap.Error(notifyErr))
	}

	s.scheduleReminder(record, sched, displayTopic, joinURL)
	s.syncCalendar(req, sched, displayTopic, joinURL, purpose)

	return record, nil
}

// scheduleReminder queues the day-before reminder mail. Skipped when the
// start never parsed or the appointment is closer than the reminder offset.
func (s *DefaultAppointmentService) scheduleReminder(record *models.Appointment, sched Schedule, topic, joinURL string) {
	if s.Reminders == nil || sched.Unvalidated {
		return
	}
	fireAt := sched.Start.Add(-24 * time.Hour)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		AppointmentID: record.ID,
		Email:         record.CustomerEmail,
		Name:          record.CustomerName,
		Topic:         topic,
		DateTime:      sched.ISOTime,
		JoinURL:       joinURL,
	}
	if err := s.Reminders.Schedule(payload, fireAt); err != nil {
		utils.GetLogger().Warn("Failed to queue reminder", zap.Error(err))
	}
}

// syncCalendar mirrors the appointment into the external calendar,
// fire-and-forget. Failures are logged and never surfaced.
func (s *DefaultAppointmentService) syncCalendar(req models.BookingRequest, sched Schedule, topic, joinURL, purpose string) {
	if s.CalendarSync == nil {
		return
	}
	go func() {
		logger := utils.GetLogger()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Calendar sync panicked", zap.Any("error", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		description := fmt.Sprintf("Meeting Topic: %s\nClient: %s (%s)\nCompany: %s\nZoom Link: %s\n\nPurpose Note: %s",
			topic, req.Name, req.Email, orNA(req.CompanyName), joinURL, purpose)
		if err := s.CalendarSync.InsertEvent(ctx, topic, joinURL, description, sched.ISOTime, 60); err != nil {
			logger.Warn("Calendar sync failed", zap.Error(err))
		}
	}()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
