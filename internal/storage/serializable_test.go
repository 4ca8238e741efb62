package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/pfrederiksen/eventbook/internal/event"
)

func validAdapted() adaptedEvent {
	return adaptedEvent{
		ID:    "6f1c2a56-8a34-4b1e-9c7d-0f3b2e1a9d01",
		Name:  "Spring Championship",
		Start: "2026-03-15 09:00",
		End:   "2026-03-15 13:00",
	}
}

func TestAdaptedEvent_ToModel(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(a *adaptedEvent)
		wantErr   bool
		wantField string
	}{
		{
			name:   "valid",
			modify: func(a *adaptedEvent) {},
		},
		{
			name:      "missing id",
			modify:    func(a *adaptedEvent) { a.ID = "" },
			wantErr:   true,
			wantField: "id",
		},
		{
			name:      "negative id",
			modify:    func(a *adaptedEvent) { a.ID = "-1" },
			wantErr:   true,
			wantField: "id",
		},
		{
			name:      "nil uuid",
			modify:    func(a *adaptedEvent) { a.ID = "00000000-0000-0000-0000-000000000000" },
			wantErr:   true,
			wantField: "id",
		},
		{
			name:      "missing name",
			modify:    func(a *adaptedEvent) { a.Name = "" },
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "missing start",
			modify:    func(a *adaptedEvent) { a.Start = "" },
			wantErr:   true,
			wantField: "start",
		},
		{
			name:      "non canonical start",
			modify:    func(a *adaptedEvent) { a.Start = "Mar 15 2026" },
			wantErr:   true,
			wantField: "date",
		},
		{
			name:      "missing end",
			modify:    func(a *adaptedEvent) { a.End = "" },
			wantErr:   true,
			wantField: "end",
		},
		{
			name:      "end before start",
			modify:    func(a *adaptedEvent) { a.End = "2026-03-14 09:00" },
			wantErr:   true,
			wantField: "end",
		},
		{
			name:      "description too long",
			modify:    func(a *adaptedEvent) { a.Description = strings.Repeat("x", event.MaxDescriptionLength+1) },
			wantErr:   true,
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAdapted()
			tt.modify(&a)

			evt, err := a.toModel()
			if (err != nil) != tt.wantErr {
				t.Fatalf("toModel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				if evt.ID.String() != a.ID {
					t.Errorf("ID = %s, want %s", evt.ID, a.ID)
				}
				return
			}

			var verr *event.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v is not a *event.ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestSerializableEventBook_ToModel(t *testing.T) {
	second := validAdapted()
	second.ID = "0b7e4d2c-3f1a-4c5e-8b9d-2a6f7c8e1d02"
	second.Name = "Summer Classic"

	book, err := serializableEventBook{Events: []adaptedEvent{validAdapted(), second}}.toModel()
	if err != nil {
		t.Fatalf("toModel() error = %v", err)
	}
	if book.Len() != 2 {
		t.Errorf("Len() = %d, want 2", book.Len())
	}
	if book.Events()[1].Name != "Summer Classic" {
		t.Error("toModel() should keep document order")
	}

	t.Run("nil events decodes to empty book", func(t *testing.T) {
		book, err := serializableEventBook{}.toModel()
		if err != nil || book.Len() != 0 {
			t.Errorf("toModel() = %v, %v; want empty book", book, err)
		}
	})

	t.Run("error names the event position", func(t *testing.T) {
		bad := validAdapted()
		bad.ID = "not-a-uuid"
		_, err := serializableEventBook{Events: []adaptedEvent{validAdapted(), bad}}.toModel()
		if err == nil || !strings.HasPrefix(err.Error(), "event 2:") {
			t.Errorf("toModel() error = %v, want prefix %q", err, "event 2:")
		}
	})

	t.Run("same name and start under different ids", func(t *testing.T) {
		dup := validAdapted()
		dup.ID = "0b7e4d2c-3f1a-4c5e-8b9d-2a6f7c8e1d02"
		_, err := serializableEventBook{Events: []adaptedEvent{validAdapted(), dup}}.toModel()
		if !errors.Is(err, event.ErrInvalidValue) {
			t.Errorf("toModel() error = %v, want invalid value", err)
		}
	})
}

func TestNewSerializableEventBook(t *testing.T) {
	book, err := serializableEventBook{Events: []adaptedEvent{validAdapted()}}.toModel()
	if err != nil {
		t.Fatal(err)
	}

	doc := newSerializableEventBook(book)
	if len(doc.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(doc.Events))
	}
	if doc.Events[0] != validAdapted() {
		t.Errorf("adapted = %+v, want %+v", doc.Events[0], validAdapted())
	}
}
