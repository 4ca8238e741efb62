package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/eventbook/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseFormat validates a --format flag value
func ParseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

// EventView is the printed form of an event
type EventView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// OutputResult contains data to be output
type OutputResult struct {
	File       string      `json:"file"`
	Events     []EventView `json:"events"`
	EventCount int         `json:"event_count"`
}

func newEventView(evt *event.Event) EventView {
	return EventView{
		ID:          evt.ID.String(),
		Name:        evt.Name,
		Start:       event.FormatDateTime(evt.Start),
		End:         event.FormatDateTime(evt.End),
		Location:    evt.Location,
		Description: evt.Description,
	}
}

func newOutputResult(file string, events []*event.Event) *OutputResult {
	result := &OutputResult{
		File:       file,
		Events:     make([]EventView, 0, len(events)),
		EventCount: len(events),
	}
	for _, evt := range events {
		result.Events = append(result.Events, newEventView(evt))
	}
	return result
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for i, evt := range result.Events {
		fmt.Fprintf(w, "%d. %s\n", i+1, evt.Name)
		fmt.Fprintf(w, "   %s -> %s\n", evt.Start, evt.End)
		if evt.Location != "" {
			fmt.Fprintf(w, "   at %s\n", evt.Location)
		}
		if verbose {
			fmt.Fprintf(w, "   ID: %s\n", evt.ID)
			if evt.Description != "" {
				fmt.Fprintf(w, "   %s\n", strings.ReplaceAll(evt.Description, "\n", "\n   "))
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d events\n", result.EventCount)
	return nil
}
