package calendar

import "context"

// SyncService mirrors confirmed appointments into an external calendar.
// The insert is best-effort: the booking pipeline never fails on it.
type SyncService interface {
	InsertEvent(ctx context.Context, summary, location, description, isoStartTime string, durationMinutes int) error
}
