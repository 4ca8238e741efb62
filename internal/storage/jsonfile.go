package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pfrederiksen/eventbook/internal/logger"
)

// readJSONFile decodes the file at path into v.
// Returns false with no error when the file does not exist.
func readJSONFile(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &DataLoadingError{Path: path, Err: fmt.Errorf("reading file: %w", err)}
	}

	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("Error reading from json file", logger.Fields{"path": path}, err)
		return false, &DataLoadingError{Path: path, Err: fmt.Errorf("parsing json: %w", err)}
	}

	return true, nil
}

// saveJSONFile encodes v as indented JSON and overwrites path with it
func saveJSONFile(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// createIfMissing creates the file at path, and any missing parent
// directories, unless it already exists.
func createIfMissing(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating parent directories: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	return f.Close()
}
