package calendar

import (
	"fmt"
	"strings"
	"time"
)

const icsDomain = "wtm-consulting.de"

// Artifact is a generated calendar invite. Fallback is set when the start
// string could not be parsed and the current instant was substituted, so
// callers and tests can tell the degraded path apart from a clean run.
type Artifact struct {
	Content  string
	UID      string
	Start    time.Time
	End      time.Time
	Fallback bool
}

// GenerateICS builds a single-event VCALENDAR document. It never fails: an
// unparseable start time falls back to the current instant, since an
// attachment with a slightly wrong time beats no attachment at all.
func GenerateICS(isoStartTime string, durationMinutes int, subject, description, location, organizerName, organizerEmail string) Artifact {
	start, err := parseICSTime(isoStartTime)
	fallback := false
	if err != nil {
		start = time.Now()
		fallback = true
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	uid := fmt.Sprintf("%d@%s", time.Now().Unix(), icsDomain)

	// RFC 5545 requires literal "\n" escapes for newlines in text values.
	formattedDesc := strings.ReplaceAll(description, "\n", `\n`)

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	b.WriteString("PRODID:-//Vallit//WTM Consulting//EN\n")
	b.WriteString("CALSCALE:GREGORIAN\n")
	b.WriteString("METHOD:REQUEST\n")
	b.WriteString("BEGIN:VEVENT\n")
	b.WriteString("UID:" + uid + "\n")
	b.WriteString("DTSTAMP:" + formatICSDate(time.Now()) + "\n")
	b.WriteString("DTSTART:" + formatICSDate(start) + "\n")
	b.WriteString("DTEND:" + formatICSDate(end) + "\n")
	b.WriteString("SUMMARY:" + subject + "\n")
	b.WriteString("DESCRIPTION:" + formattedDesc + "\n")
	b.WriteString("LOCATION:" + location + "\n")
	b.WriteString(fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s\n", organizerName, organizerEmail))
	b.WriteString("STATUS:CONFIRMED\n")
	b.WriteString("SEQUENCE:0\n")
	b.WriteString("END:VEVENT\n")
	b.WriteString("END:VCALENDAR")

	return Artifact{
		Content:  b.String(),
		UID:      uid,
		Start:    start,
		End:      end,
		Fallback: fallback,
	}
}

// formatICSDate renders a timestamp in UTC basic format (e.g. 20260102T150405Z).
func formatICSDate(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// parseICSTime accepts RFC 3339 as well as a zone-less combined date-time.
func parseICSTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable start time %q", raw)
}
