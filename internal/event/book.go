package event

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEvent = errors.New("event already exists in the event book")
	ErrEventNotFound  = errors.New("event not found")
)

// ReadOnlyEventBook is the read side of an event book
type ReadOnlyEventBook interface {
	// Events returns the events in book order. The slice is a copy.
	Events() []*Event
}

// EventBook is an ordered collection of events with unique IDs.
// No two events in a book share the same name and start time.
type EventBook struct {
	events []*Event
}

// NewEventBook creates an empty event book
func NewEventBook() *EventBook {
	return &EventBook{events: make([]*Event, 0)}
}

// NewEventBookFrom copies the events of another book
func NewEventBookFrom(src ReadOnlyEventBook) *EventBook {
	book := NewEventBook()
	if src == nil {
		return book
	}
	for _, evt := range src.Events() {
		copied := *evt
		book.events = append(book.events, &copied)
	}
	return book
}

// Events returns a copy of the event list
func (b *EventBook) Events() []*Event {
	out := make([]*Event, len(b.events))
	copy(out, b.events)
	return out
}

// Len returns the number of events
func (b *EventBook) Len() int {
	return len(b.events)
}

// Has reports whether an event with the same ID is in the book
func (b *EventBook) Has(id uuid.UUID) bool {
	_, ok := b.indexOf(id)
	return ok
}

// HasDuplicate reports whether evt collides with an existing event,
// either by ID or by name and start time.
func (b *EventBook) HasDuplicate(evt *Event) bool {
	for _, existing := range b.events {
		if existing.ID == evt.ID || existing.SameEvent(evt) {
			return true
		}
	}
	return false
}

// Add appends evt. Returns ErrDuplicateEvent if it collides with an existing event.
func (b *EventBook) Add(evt *Event) error {
	if b.HasDuplicate(evt) {
		return ErrDuplicateEvent
	}
	b.events = append(b.events, evt)
	return nil
}

// Find returns the event with the given ID
func (b *EventBook) Find(id uuid.UUID) (*Event, error) {
	i, ok := b.indexOf(id)
	if !ok {
		return nil, ErrEventNotFound
	}
	return b.events[i], nil
}

// Remove deletes the event with the given ID
func (b *EventBook) Remove(id uuid.UUID) error {
	i, ok := b.indexOf(id)
	if !ok {
		return ErrEventNotFound
	}
	b.events = append(b.events[:i], b.events[i+1:]...)
	return nil
}

// Equal reports whether two books hold equal events in the same order
func (b *EventBook) Equal(other ReadOnlyEventBook) bool {
	if other == nil {
		return false
	}
	theirs := other.Events()
	if len(theirs) != len(b.events) {
		return false
	}
	for i, evt := range b.events {
		if !evt.Equal(theirs[i]) {
			return false
		}
	}
	return true
}

func (b *EventBook) indexOf(id uuid.UUID) (int, bool) {
	for i, evt := range b.events {
		if evt.ID == id {
			return i, true
		}
	}
	return -1, false
}
