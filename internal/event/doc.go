// Package event provides the in-memory event book model.
//
// An Event is a named, scheduled entry identified by a UUID. Events are
// validated on construction so that an EventBook only ever holds values
// that can be written to and read back from storage without loss. Times
// are kept in UTC at minute precision.
package event
