// Package calendar renders events as an iCalendar (RFC 5545) document.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/eventbook/internal/event"
)

const ProdID = "-//eventbook//eventbook//EN"

// GenerateICS renders one VEVENT per event. now is used for DTSTAMP.
func GenerateICS(events []*event.Event, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", ProdID))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, evt := range events {
		writeEvent(&ics, evt, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, evt *event.Event, now time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s@eventbook\r\n", evt.ID))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now)))
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(evt.Start)))

	// Zero-length events still need a DTEND after DTSTART for most clients
	end := evt.End
	if !end.After(evt.Start) {
		end = evt.Start.Add(time.Minute)
	}
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(evt.Name)))
	if evt.Location != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(evt.Location)))
	}
	if evt.Description != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(evt.Description)))
	}
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar text values
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
