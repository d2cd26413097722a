package models

type (
	// MeetingSettings mirrors the Zoom meeting settings object.
	// https://developers.zoom.us/docs/api/rest/reference/zoom-api/methods/#operation/meetingCreate
	MeetingSettings struct {
		HostVideo        bool `json:"host_video"`
		ParticipantVideo bool `json:"participant_video"`
		JoinBeforeHost   bool `json:"join_before_host"`
		MuteUponEntry    bool `json:"mute_upon_entry"`
		WaitingRoom      bool `json:"waiting_room"`
	}

	// MeetingRequest is the create-meeting payload. Type 2 is a scheduled
	// meeting; duration is fixed at 60 minutes for consultations.
	MeetingRequest struct {
		Topic     string          `json:"topic"`
		Type      int             `json:"type"`
		StartTime string          `json:"start_time"`
		Duration  int             `json:"duration"`
		Timezone  string          `json:"timezone"`
		Settings  MeetingSettings `json:"settings"`
	}

	// MeetingResource is the provider-assigned meeting, reduced to the
	// fields the booking pipeline consumes.
	MeetingResource struct {
		ID       int64  `json:"id"`
		JoinURL  string `json:"join_url"`
		StartURL string `json:"start_url"`
	}
)
