package storage

import (
	"fmt"
	"reflect"
	"time"

	"github.com/pfrederiksen/eventbook/internal/event"
	"github.com/pfrederiksen/eventbook/internal/logger"
)

// FileStore reads and writes an event book as a JSON file
type FileStore struct {
	path string
}

// New creates a FileStore whose default file is path
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the default file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the event book from the default path
func (s *FileStore) Load() (*event.EventBook, bool, error) {
	return s.LoadFrom(s.path)
}

// LoadFrom reads the event book stored at path.
// It returns false with no error when no file exists at path, and a
// *DataLoadingError when the file is malformed or holds illegal values.
// Panics if path is empty.
func (s *FileStore) LoadFrom(path string) (*event.EventBook, bool, error) {
	if path == "" {
		panic("storage: LoadFrom called with empty path")
	}

	start := time.Now()
	defer func() {
		logger.IncrCounter("storage.load")
		logger.RecordTiming("storage.load", time.Since(start))
	}()

	var doc serializableEventBook
	found, err := readJSONFile(path, &doc)
	if err != nil || !found {
		return nil, false, err
	}

	book, err := doc.toModel()
	if err != nil {
		logger.Info("Illegal values found in event book file", logger.Fields{
			"path":    path,
			"message": err.Error(),
		})
		return nil, false, &DataLoadingError{Path: path, Err: err}
	}

	return book, true, nil
}

// LoadOrEmpty reads the default path, returning an empty book if there is no file
func (s *FileStore) LoadOrEmpty() (*event.EventBook, error) {
	book, found, err := s.Load()
	if err != nil {
		return nil, err
	}
	if !found {
		return event.NewEventBook(), nil
	}
	return book, nil
}

// Save writes book to the default path
func (s *FileStore) Save(book event.ReadOnlyEventBook) error {
	return s.SaveTo(book, s.path)
}

// SaveTo writes book to path, creating the file and its parent directories
// if needed. Existing content is overwritten.
// Panics if book is nil or path is empty.
func (s *FileStore) SaveTo(book event.ReadOnlyEventBook, path string) error {
	if isNil(book) {
		panic("storage: SaveTo called with nil event book")
	}
	if path == "" {
		panic("storage: SaveTo called with empty path")
	}

	start := time.Now()
	defer func() {
		logger.IncrCounter("storage.save")
		logger.RecordTiming("storage.save", time.Since(start))
	}()

	if err := createIfMissing(path); err != nil {
		return fmt.Errorf("saving event book to %s: %w", path, err)
	}
	if err := saveJSONFile(newSerializableEventBook(book), path); err != nil {
		return fmt.Errorf("saving event book to %s: %w", path, err)
	}

	logger.Debug("Saved event book", logger.Fields{"path": path})
	return nil
}

// isNil also catches a typed nil pointer stored in the interface
func isNil(book event.ReadOnlyEventBook) bool {
	if book == nil {
		return true
	}
	v := reflect.ValueOf(book)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}
