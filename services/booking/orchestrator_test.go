package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"vallit/models"
	"vallit/services/notification"
)

type fakeRepo struct {
	mu     sync.Mutex
	calls  int
	fail   bool
	stored *models.Appointment
}

func (f *fakeRepo) Create(_ context.Context, appt *models.Appointment) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return nil, errors.New("store unavailable")
	}
	f.stored = appt
	return appt, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	return nil, fmt.Errorf("appointment with id %s not found", id)
}

func (f *fakeRepo) ListBySession(_ context.Context, _ string) ([]models.Appointment, error) {
	return nil, nil
}

type fakeMeetingService struct {
	mu          sync.Mutex
	authCalls   int
	createCalls int
	failAuth    bool
	failCreate  bool
	lastStart   string
	lastTopic   string
}

func (f *fakeMeetingService) Authenticate(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authCalls++
	if f.failAuth {
		return "", errors.New("token endpoint unreachable")
	}
	return "test-token", nil
}

func (f *fakeMeetingService) CreateMeeting(_ context.Context, token, topic, isoStart string) (*models.MeetingResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if token != "test-token" {
		return nil, errors.New("bad token")
	}
	if f.failCreate {
		return nil, errors.New("meeting endpoint unreachable")
	}
	f.lastTopic = topic
	f.lastStart = isoStart
	return &models.MeetingResource{
		ID:       88991122334,
		JoinURL:  "https://zoom.us/j/88991122334",
		StartURL: "https://zoom.us/s/88991122334",
	}, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls int
	fail  bool
	last  notification.ConfirmationParams
}

func (f *fakeNotifier) SendBookingConfirmation(_ context.Context, p notification.ConfirmationParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = p
	if f.fail {
		return errors.New("smtp auth rejected")
	}
	return nil
}

func (f *fakeNotifier) SendReminder(_ context.Context, _ models.ReminderPayload) error {
	return nil
}

type fakeCalendarSync struct {
	mu    sync.Mutex
	calls int
	done  chan struct{}
}

func (f *fakeCalendarSync) InsertEvent(_ context.Context, _, _, _, _ string, _ int) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	select {
	case f.done <- struct{}{}:
	default:
	}
	return nil
}

type fakeReminderScheduler struct {
	mu      sync.Mutex
	calls   int
	payload models.ReminderPayload
	fireAt  time.Time
}

func (f *fakeReminderScheduler) Schedule(p models.ReminderPayload, fireAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.payload = p
	f.fireAt = fireAt
	return nil
}

type fixture struct {
	repo      *fakeRepo
	meetings  *fakeMeetingService
	notifier  *fakeNotifier
	sync      *fakeCalendarSync
	reminders *fakeReminderScheduler
	svc       *DefaultAppointmentService
}

func newFixture() *fixture {
	f := &fixture{
		repo:      &fakeRepo{},
		meetings:  &fakeMeetingService{},
		notifier:  &fakeNotifier{},
		sync:      &fakeCalendarSync{done: make(chan struct{}, 1)},
		reminders: &fakeReminderScheduler{},
	}
	f.svc = &DefaultAppointmentService{
		Repo:         f.repo,
		MeetingSvc:   f.meetings,
		Notifier:     f.notifier,
		CalendarSync: f.sync,
		Reminders:    f.reminders,
	}
	return f
}

func (f *fixture) waitForSync(t *testing.T) {
	t.Helper()
	select {
	case <-f.sync.done:
	case <-time.After(2 * time.Second):
		t.Fatal("calendar sync was never attempted")
	}
}

// validStart returns a start time safely past the notice period, inside
// business hours, in the "date space time" form.
func validStart(hour int) string {
	start := time.Now().AddDate(0, 0, 3)
	start = time.Date(start.Year(), start.Month(), start.Day(), hour, 0, 0, 0, time.Local)
	return start.Format("2006-01-02 15:04:05")
}

func TestCreateAppointmentRejectsShortNotice(t *testing.T) {
	f := newFixture()

	req := models.BookingRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		DateTime: time.Now().Add(1 * time.Hour).Format("2006-01-02 15:04:05"),
	}
	record, err := f.svc.CreateAppointment(context.Background(), req)
	if record != nil {
		t.Fatalf("expected no record, got %+v", record)
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !strings.HasPrefix(vErr.Message, "Booking too soon") {
		t.Errorf("message = %q, want notice-period reason", vErr.Message)
	}

	// Rejection must precede every external effect.
	if f.meetings.authCalls != 0 || f.meetings.createCalls != 0 {
		t.Errorf("meeting provider was called %d/%d times, want 0", f.meetings.authCalls, f.meetings.createCalls)
	}
	if f.repo.calls != 0 {
		t.Errorf("store was called %d times, want 0", f.repo.calls)
	}
	if f.notifier.calls != 0 {
		t.Errorf("mailer was called %d times, want 0", f.notifier.calls)
	}
	if f.sync.calls != 0 {
		t.Errorf("calendar sync was called %d times, want 0", f.sync.calls)
	}
}

func TestCreateAppointmentRejectsOutsideBusinessHours(t *testing.T) {
	f := newFixture()

	req := models.BookingRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		DateTime: validStart(20),
	}
	record, err := f.svc.CreateAppointment(context.Background(), req)
	if record != nil {
		t.Fatalf("expected no record, got %+v", record)
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !strings.Contains(vErr.Message, "business hours") {
		t.Errorf("message = %q, want business-hours reason", vErr.Message)
	}
	if f.meetings.authCalls != 0 || f.repo.calls != 0 || f.notifier.calls != 0 {
		t.Error("external calls made despite rejection")
	}
}

func TestCreateAppointmentEndToEnd(t *testing.T) {
	f := newFixture()

	req := models.BookingRequest{
		CompanyID: "wtm",
		SessionID: "sess-42",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		DateTime:  validStart(10),
		Purpose:   "Strategy",
		TopicType: "Coaching",
	}
	record, err := f.svc.CreateAppointment(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record == nil {
		t.Fatal("expected a record")
	}
	if record.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", record.Status)
	}
	if !strings.Contains(record.Purpose, "[Coaching] Strategy") {
		t.Errorf("purpose = %q, want it to contain [Coaching] Strategy", record.Purpose)
	}
	if !strings.Contains(record.Purpose, "https://zoom.us/j/88991122334") {
		t.Errorf("purpose = %q, want it to embed the join URL", record.Purpose)
	}

	if f.meetings.lastTopic != "WTM Coaching: Strategy" {
		t.Errorf("meeting topic = %q, want WTM Coaching: Strategy", f.meetings.lastTopic)
	}
	if f.notifier.calls != 1 {
		t.Fatalf("mailer calls = %d, want 1", f.notifier.calls)
	}
	if f.notifier.last.Topic != "WTM Coaching: Strategy" {
		t.Errorf("mail topic = %q, want WTM Coaching: Strategy", f.notifier.last.Topic)
	}
	if !strings.Contains(string(f.notifier.last.ICS), "SUMMARY:WTM Coaching: Strategy") {
		t.Error("invite SUMMARY does not carry the display topic")
	}
	if f.notifier.last.SessionID != "sess-42" {
		t.Errorf("mail session id = %q, want sess-42", f.notifier.last.SessionID)
	}

	if f.reminders.calls != 1 {
		t.Fatalf("reminder schedules = %d, want 1", f.reminders.calls)
	}
	if f.reminders.payload.AppointmentID != record.ID {
		t.Errorf("reminder appointment id = %q, want %q", f.reminders.payload.AppointmentID, record.ID)
	}

	f.waitForSync(t)
}

func TestCreateAppointmentProviderFailureDegrades(t *testing.T) {
	f := newFixture()
	f.meetings.failCreate = true

	req := models.BookingRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		DateTime:  validStart(10),
		Purpose:   "Strategy",
		TopicType: "Coaching",
	}
	record, err := f.svc.CreateAppointment(context.Background(), req)
	if err != nil {
		t.Fatalf("provider failure must not abort the booking: %v", err)
	}
	if f.repo.calls != 1 {
		t.Fatalf("store calls = %d, want 1", f.repo.calls)
	}
	if !strings.Contains(record.Purpose, pendingJoinURL) {
		t.Errorf("purpose = %q, want the pending sentinel", record.Purpose)
	}
	if f.notifier.calls != 1 {
		t.Fatalf("mailer calls = %d, want 1", f.notifier.calls)
	}
	if f.notifier.last.JoinURL != pendingJoinURL {
		t.Errorf("mail join URL = %q, want %q", f.notifier.last.JoinURL, pendingJoinURL)
	}
}

func TestCreateAppointmentAuthFailureSkipsMeetingCreate(t *testing.T) {
	f := newFixture()
	f.meetings.failAuth = true

	req := models.BookingRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		DateTime: validStart(10),
	}
	record, err := f.svc.CreateAppointment(context.Background(), req)
	if err != nil {
		t.Fatalf("auth failure must not abort the booking: %v", err)
	}
	if f.meetings.createCalls != 0 {
		t.Errorf("create called %d times despite failed auth", f.meetings.createCalls)
	}
	if f.notifier.last.JoinURL != pendingJoinURL {
		t.Errorf("mail join URL = %q, want %q", f.notifier.last.JoinURL, pendingJoinURL)
	}
	if record.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", record.Status)
	}
}

func TestCreateAppointmentPersistenceFailureReturnsPlaceholder(t *testing.T) {
	f := newFixture()
	f.repo.fail = true

	req := models.BookingRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		DateTime: validStart(10),
	}
	record, err := f.svc.CreateAppointment(context.Background(), req)
	if err != nil {
		t.Fatalf("store failure must not abort the booking: %v", err)
	}
	if record.ID != offlineRecordID {
		t.Errorf("record ID = %q, want the offline placeholder", record.ID)
	}
	if f.notifier.calls != 1 {
		t.Errorf("mailer calls = %d, want 1 (notification still attempted)", f.notifier.calls)
	}
}

func TestCreateAppointmentNotificationFailureKeepsRecord(t *testing.T) {
	f := newFixture()
	f.notifier.fail = true

	req := models.BookingRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		DateTime: validStart(10),
	}
	record, err := f.svc.CreateAppointment(context.Background(), req)
	if err != nil {
		t.Fatalf("mail failure must not abort the booking: %v", err)
	}
	if f.repo.stored == nil || record.ID != f.repo.stored.ID {
		t.Error("returned record differs from the persisted one")
	}
}

func TestCreateAppointmentUnparseableDatePassesThrough(t *testing.T) {
	f := newFixture()

	req := models.BookingRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		DateTime: "next tuesday morning",
	}
	record, err := f.svc.CreateAppointment(context.Background(), req)
	if err != nil {
		t.Fatalf("unparseable input must pass through, got %v", err)
	}
	if record.Date != "next tuesday morning" {
		t.Errorf("record date = %q, want the raw string preserved", record.Date)
	}
	if f.meetings.lastStart != "next tuesday morning" {
		t.Errorf("meeting start = %q, want the raw string", f.meetings.lastStart)
	}
	// No parseable start means no reminder can be placed.
	if f.reminders.calls != 0 {
		t.Errorf("reminder schedules = %d, want 0", f.reminders.calls)
	}
}
