package storage

import "fmt"

// DataLoadingError is returned when a file exists but cannot be turned into
// an event book, either because it is not valid JSON or because a field
// holds an illegal value.
type DataLoadingError struct {
	Path string
	Err  error
}

func (e *DataLoadingError) Error() string {
	return fmt.Sprintf("loading event book from %s: %v", e.Path, e.Err)
}

func (e *DataLoadingError) Unwrap() error {
	return e.Err
}
