package meeting

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"vallit/models"
)

const (
	defaultOAuthBaseURL = "https://zoom.us"
	defaultAPIBaseURL   = "https://api.zoom.us"
)

// ZoomMeetingService implements MeetingService against the Zoom REST API
// using the server-to-server OAuth account_credentials grant.
type ZoomMeetingService struct {
	AccountID    string
	ClientID     string
	ClientSecret string

	// Base URLs are overridable for tests.
	OAuthBaseURL string
	APIBaseURL   string
	HTTPClient   *http.Client
}

// NewZoomMeetingService constructs a Zoom client from the given credentials.
func NewZoomMeetingService(accountID, clientID, clientSecret string) *ZoomMeetingService {
	return &ZoomMeetingService{
		AccountID:    accountID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		OAuthBaseURL: defaultOAuthBaseURL,
		APIBaseURL:   defaultAPIBaseURL,
		HTTPClient:   http.DefaultClient,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Authenticate exchanges the account credentials for a bearer token.
func (s *ZoomMeetingService) Authenticate(ctx context.Context) (string, error) {
	if s.AccountID == "" || s.ClientID == "" || s.ClientSecret == "" {
		return "", fmt.Errorf("missing Zoom credentials")
	}

	url := fmt.Sprintf("%s/oauth/token?grant_type=account_credentials&account_id=%s", s.OAuthBaseURL, s.AccountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	authHeader := base64.StdEncoding.EncodeToString([]byte(s.ClientID + ":" + s.ClientSecret))
	req.Header.Set("Authorization", "Basic "+authHeader)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("zoom token error (status %d): %s", resp.StatusCode, string(body))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("zoom token response missing access_token")
	}
	return tok.AccessToken, nil
}

// CreateMeeting schedules a 60-minute meeting on the account's user.
func (s *ZoomMeetingService) CreateMeeting(ctx context.Context, accessToken, topic, isoStartTime string) (*models.MeetingResource, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("no access token")
	}

	payload := models.MeetingRequest{
		Topic:     topic,
		Type:      2, // scheduled meeting
		StartTime: isoStartTime,
		Duration:  60,
		Timezone:  "Europe/Berlin",
		Settings: models.MeetingSettings{
			HostVideo:        true,
			ParticipantVideo: true,
			JoinBeforeHost:   false,
			MuteUponEntry:    true,
			WaitingRoom:      true,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal meeting payload: %w", err)
	}

	url := s.APIBaseURL + "/v2/users/me/meetings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build meeting request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("meeting request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("zoom create meeting error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var resource models.MeetingResource
	if err := json.NewDecoder(resp.Body).Decode(&resource); err != nil {
		return nil, fmt.Errorf("failed to decode meeting response: %w", err)
	}
	return &resource, nil
}
