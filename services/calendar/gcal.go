package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"vallit/utils"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const eventTimezone = "Europe/Berlin"

// GoogleSyncService implements SyncService against the Google Calendar API
// using a service-account credentials file.
type GoogleSyncService struct {
	CredentialsFile string
	CalendarID      string
}

// NewGoogleSyncService constructs a sync client for the configured calendar.
func NewGoogleSyncService(credentialsFile, calendarID string) *GoogleSyncService {
	return &GoogleSyncService{
		CredentialsFile: credentialsFile,
		CalendarID:      calendarID,
	}
}

// InsertEvent creates a 60-minute event in the configured calendar. The
// service is built per call; the booking volume does not warrant keeping a
// long-lived client around.
func (s *GoogleSyncService) InsertEvent(ctx context.Context, summary, location, description, isoStartTime string, durationMinutes int) error {
	logger := utils.GetLogger()

	if _, err := os.Stat(s.CredentialsFile); err != nil {
		return fmt.Errorf("google calendar credentials file not found: %w", err)
	}
	if s.CalendarID == "" {
		return fmt.Errorf("CALENDAR_ID not set")
	}

	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(s.CredentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return fmt.Errorf("failed to build calendar service: %w", err)
	}

	start, err := parseICSTime(isoStartTime)
	if err != nil {
		// Same stance as the invite artifact: a roughly-placed event is
		// preferred over no event.
		start = time.Now()
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	event := &gcal.Event{
		Summary:     summary,
		Location:    location,
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: eventTimezone,
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: eventTimezone,
		},
	}

	created, err := svc.Events.Insert(s.CalendarID, event).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to insert calendar event: %w", err)
	}

	logger.Info("Google Calendar event created", zap.String("htmlLink", created.HtmlLink))
	return nil
}
