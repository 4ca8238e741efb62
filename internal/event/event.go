package event

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 100
	MaxLocationLength    = 100
	MaxDescriptionLength = 500

	// Years outside this range cannot be written in DateTimeLayout
	MinYear = 0
	MaxYear = 9999
)

// ErrInvalidValue is matched by every ValidationError via errors.Is.
var ErrInvalidValue = errors.New("invalid value")

// ValidationError reports an illegal field value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets callers match any validation failure with errors.Is(err, ErrInvalidValue).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidValue
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Event represents a single scheduled entry in the event book
type Event struct {
	ID          uuid.UUID
	Name        string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
}

// NewEvent validates the given fields and returns an Event.
// Start and End are normalized to UTC and truncated to the minute.
func NewEvent(id uuid.UUID, name string, start, end time.Time, location, description string) (*Event, error) {
	if id == uuid.Nil {
		return nil, invalid("id", "must not be the nil UUID")
	}

	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if start.IsZero() {
		return nil, invalid("start", "is required")
	}
	if end.IsZero() {
		return nil, invalid("end", "is required")
	}
	start = normalizeTime(start)
	end = normalizeTime(end)
	if err := validateYear("start", start); err != nil {
		return nil, err
	}
	if err := validateYear("end", end); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, invalid("end", "%s is before start %s", FormatDateTime(end), FormatDateTime(start))
	}

	location = strings.TrimSpace(location)
	if err := validateText("location", location, MaxLocationLength); err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if err := validateText("description", description, MaxDescriptionLength); err != nil {
		return nil, err
	}

	return &Event{
		ID:          id,
		Name:        name,
		Start:       start,
		End:         end,
		Location:    location,
		Description: description,
	}, nil
}

// ValidateName checks that a name is non-empty, short enough, and printable
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name", "must not be blank")
	}
	return validateText("name", name, MaxNameLength)
}

func validateText(field, value string, max int) error {
	if n := utf8.RuneCountInString(value); n > max {
		return invalid(field, "is %d characters, limit is %d", n, max)
	}
	for _, r := range value {
		if unicode.IsControl(r) && r != '\n' {
			return invalid(field, "contains control character %U", r)
		}
	}
	return nil
}

func validateYear(field string, t time.Time) error {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return invalid(field, "year %d is outside %d-%d", y, MinYear, MaxYear)
	}
	return nil
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}

// SameEvent reports whether two events describe the same occurrence:
// equal names (case-insensitive) starting at the same minute.
func (e *Event) SameEvent(other *Event) bool {
	if other == nil {
		return false
	}
	return strings.EqualFold(e.Name, other.Name) && e.Start.Equal(other.Start)
}

// Equal reports whether every field of the two events matches
func (e *Event) Equal(other *Event) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ID == other.ID &&
		e.Name == other.Name &&
		e.Start.Equal(other.Start) &&
		e.End.Equal(other.End) &&
		e.Location == other.Location &&
		e.Description == other.Description
}

// Duration returns how long the event lasts
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
