package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pfrederiksen/eventbook/internal/event"
)

const duplicateEventMessage = "list contains duplicate event(s)"

// serializableEventBook is the JSON document stored on disk
type serializableEventBook struct {
	Events []adaptedEvent `json:"events"`
}

// adaptedEvent is the JSON shape of one event. Every field is kept as text
// so that illegal values survive decoding and are reported by toModel.
type adaptedEvent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

func newSerializableEventBook(book event.ReadOnlyEventBook) serializableEventBook {
	events := book.Events()
	s := serializableEventBook{Events: make([]adaptedEvent, 0, len(events))}
	for _, evt := range events {
		s.Events = append(s.Events, newAdaptedEvent(evt))
	}
	return s
}

func newAdaptedEvent(evt *event.Event) adaptedEvent {
	return adaptedEvent{
		ID:          evt.ID.String(),
		Name:        evt.Name,
		Start:       event.FormatDateTime(evt.Start),
		End:         event.FormatDateTime(evt.End),
		Location:    evt.Location,
		Description: evt.Description,
	}
}

// toModel converts the document into an event book. It performs no I/O.
func (s serializableEventBook) toModel() (*event.EventBook, error) {
	book := event.NewEventBook()
	for i, adapted := range s.Events {
		evt, err := adapted.toModel()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		if err := book.Add(evt); err != nil {
			if errors.Is(err, event.ErrDuplicateEvent) {
				return nil, &event.ValidationError{Field: "events", Message: duplicateEventMessage}
			}
			return nil, err
		}
	}
	return book, nil
}

func (a adaptedEvent) toModel() (*event.Event, error) {
	if strings.TrimSpace(a.ID) == "" {
		return nil, missingField("id")
	}
	id, err := uuid.Parse(a.ID)
	if err != nil {
		return nil, &event.ValidationError{Field: "id", Message: fmt.Sprintf("%q is not a valid UUID", a.ID)}
	}

	if a.Name == "" {
		return nil, missingField("name")
	}
	if err := event.ValidateName(a.Name); err != nil {
		return nil, err
	}

	if a.Start == "" {
		return nil, missingField("start")
	}
	start, err := event.ParseCanonical(a.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	if a.End == "" {
		return nil, missingField("end")
	}
	end, err := event.ParseCanonical(a.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return event.NewEvent(id, a.Name, start, end, a.Location, a.Description)
}

func missingField(field string) error {
	return &event.ValidationError{Field: field, Message: "field is missing"}
}
