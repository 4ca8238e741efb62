package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/eventbook/internal/event"
)

func TestGenerateICS(t *testing.T) {
	id := uuid.MustParse("6f1c2a56-8a34-4b1e-9c7d-0f3b2e1a9d01")
	evt, err := event.NewEvent(id, "Spring Championship",
		time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC),
		"Chimera Golf Club, Las Vegas", "Tee times; bring water")
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	ics := GenerateICS([]*event.Event{evt}, now)

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ProdID,
		"BEGIN:VEVENT",
		"UID:6f1c2a56-8a34-4b1e-9c7d-0f3b2e1a9d01@eventbook",
		"DTSTAMP:20260101T120000Z",
		"DTSTART:20260315T090000Z",
		"DTEND:20260315T130000Z",
		"SUMMARY:Spring Championship",
		"LOCATION:Chimera Golf Club\\, Las Vegas", // Comma is escaped
		"DESCRIPTION:Tee times\\; bring water",
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if !strings.HasSuffix(ics, "END:VCALENDAR\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}
}

func TestGenerateICS_MultipleAndEmpty(t *testing.T) {
	start := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	a, _ := event.NewEvent(uuid.New(), "A", start, start, "", "")
	b, _ := event.NewEvent(uuid.New(), "B", start, start.Add(time.Hour), "", "")
	now := time.Now()

	ics := GenerateICS([]*event.Event{a, b}, now)
	if n := strings.Count(ics, "BEGIN:VEVENT"); n != 2 {
		t.Errorf("VEVENT count = %d, want 2", n)
	}
	// Zero-length event gets a one minute DTEND
	if !strings.Contains(ics, "DTEND:20260315T090100Z") {
		t.Error("zero-length event should end one minute after start")
	}
	if strings.Contains(ics, "LOCATION:") {
		t.Error("empty location should be omitted")
	}

	empty := GenerateICS(nil, now)
	if strings.Contains(empty, "BEGIN:VEVENT") {
		t.Error("empty calendar should have no VEVENT")
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a,b", "a\\,b"},
		{"a;b", "a\\;b"},
		{"line1\nline2", "line1\\nline2"},
		{"back\\slash", "back\\\\slash"},
	}
	for _, tt := range tests {
		if got := escapeICS(tt.in); got != tt.want {
			t.Errorf("escapeICS(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
