package event

import (
	"strings"
	"time"
)

// DateTimeLayout is the canonical layout used when writing event times
const DateTimeLayout = "2006-01-02 15:04"

// lenientLayouts are also accepted when parsing user input.
// Layouts without a time of day resolve to midnight.
var lenientLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02",
	"Jan 2 2006 15:04",
	"Jan 2 2006",
}

// ParseDateTime parses text in the canonical layout or one of the lenient
// layouts. The result is in UTC.
func ParseDateTime(text string) (time.Time, error) {
	return ParseDateTimeIn(text, time.UTC)
}

// ParseDateTimeIn is like ParseDateTime but reads the wall clock time in loc.
// The returned time keeps loc; NewEvent converts it to UTC.
func ParseDateTimeIn(text string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, invalid("date", "is empty")
	}

	for _, layout := range lenientLayouts {
		t, err := time.ParseInLocation(layout, text, loc)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, invalid("date", "%q does not match %q", text, DateTimeLayout)
}

// ParseCanonical only accepts DateTimeLayout. Storage uses it so that every
// value it reads is one it could have written.
func ParseCanonical(text string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, invalid("date", "%q does not match %q", text, DateTimeLayout)
	}
	return t, nil
}

// FormatDateTime writes t in DateTimeLayout
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// IsPast reports whether the event has already ended at now
func (e *Event) IsPast(now time.Time) bool {
	return e.End.Before(now)
}

// IsWithinDays checks if an event starts within N days of now.
// Returns true if days <= 0 (feature disabled).
func (e *Event) IsWithinDays(now time.Time, days int) bool {
	if days <= 0 {
		return true
	}
	cutoff := now.AddDate(0, 0, days)
	return !e.Start.Before(now) && e.Start.Before(cutoff)
}
