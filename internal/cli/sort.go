package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/eventbook/internal/event"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByStart SortOrder = "start"
	SortByName  SortOrder = "name"
	SortByBook  SortOrder = "book"
)

// ParseSortOrder validates a --sort flag value
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	switch order {
	case SortByStart, SortByName, SortByBook:
		return order, nil
	default:
		return "", fmt.Errorf("invalid sort order: %s (must be 'start', 'name' or 'book')", s)
	}
}

// sortEvents sorts events in place. SortByBook keeps the stored order.
func sortEvents(events []*event.Event, order SortOrder) {
	switch order {
	case SortByStart:
		sort.SliceStable(events, func(i, j int) bool {
			return compareByStart(events[i], events[j])
		})
	case SortByName:
		sort.SliceStable(events, func(i, j int) bool {
			ni, nj := strings.ToLower(events[i].Name), strings.ToLower(events[j].Name)
			if ni != nj {
				return ni < nj
			}
			return compareByStart(events[i], events[j])
		})
	}
}

// compareByStart orders by start time, then end time, then name
func compareByStart(i, j *event.Event) bool {
	if !i.Start.Equal(j.Start) {
		return i.Start.Before(j.Start)
	}
	if !i.End.Equal(j.End) {
		return i.End.Before(j.End)
	}
	return strings.ToLower(i.Name) < strings.ToLower(j.Name)
}
