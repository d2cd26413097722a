package meeting

import (
	"context"

	"vallit/models"
)

// MeetingService obtains a short-lived access token and creates Zoom meetings.
// Both calls are one-shot: a failure is returned to the caller, which decides
// whether the booking degrades or aborts.
type MeetingService interface {
	Authenticate(ctx context.Context) (string, error)
	CreateMeeting(ctx context.Context, accessToken, topic, isoStartTime string) (*models.MeetingResource, error)
}
