package booking

import (
	"strings"
	"time"
)

const (
	// Minimum lead time between booking and appointment.
	noticePeriod = 36 * time.Hour
	// Local business hours: bookings must start within [openingHour, closingHour).
	openingHour = 8
	closingHour = 18

	msgTooSoon      = "Booking too soon. Please choose a time at least 1.5 days in advance."
	msgOutsideHours = "Our business hours are 8am to 6pm. Please choose a time within this range."

	// Consultations are a fixed hour; not user-configurable.
	appointmentLength = 60 * time.Minute
)

// Schedule is the outcome of validating a requested start time.
//
// Unvalidated marks the pass-through path: when the raw string matches none
// of the accepted formats the request is not rejected, but the notice-period
// and business-hours rules cannot run, and downstream consumers work from the
// preserved raw string.
type Schedule struct {
	Start       time.Time     // zero when Unvalidated
	ISOTime     string        // normalized ISO start (the raw input when Unvalidated)
	Duration    time.Duration // fixed at 60 minutes
	Unvalidated bool
}

// ValidateSchedule parses the requested start time and enforces the booking
// window and business-hours rules against the given current instant. A
// rejection is returned as a *ValidationError; no side effects precede it.
func ValidateSchedule(raw string, now time.Time) (Schedule, error) {
	sched := Schedule{ISOTime: raw, Duration: appointmentLength}

	start, iso, ok := parseStartTime(raw)
	if !ok {
		sched.Unvalidated = true
		return sched, nil
	}
	sched.Start = start
	sched.ISOTime = iso

	// Wall-clock comparison: naive inputs were parsed in local time, so
	// comparing against the local now mirrors what the customer typed.
	if start.Before(now.Add(noticePeriod)) {
		return Schedule{}, NewValidationError(msgTooSoon)
	}

	if h := start.Hour(); h < openingHour || h >= closingHour {
		return Schedule{}, NewValidationError(msgOutsideHours)
	}

	return sched, nil
}

// parseStartTime tries the strict combined form first (with or without a
// zone), then the "date space time" form, which is normalized to the strict
// form. The third return is false when nothing matched.
func parseStartTime(raw string) (time.Time, string, bool) {
	if strings.Contains(raw, "T") {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, raw, true
		}
		if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.Local); err == nil {
			return t, raw, true
		}
		return time.Time{}, "", false
	}

	if t, err := time.ParseInLocation("2006-01-02 15:04:05", raw, time.Local); err == nil {
		return t, t.Format("2006-01-02T15:04:05") + "Z", true
	}
	return time.Time{}, "", false
}
