// Package cli implements the eventbook command-line interface.
//
// The cli package provides the Cobra-based commands for listing, adding,
// deleting, importing and exporting events. Every command loads the event
// book through the storage package (a missing file is an empty book),
// applies its change and saves the book back to the same file.
package cli
