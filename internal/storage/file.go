package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileName is the storage file created inside the data directory.
const FileName = "storage.yaml"

// FileBackend persists values as a flat YAML map.
type FileBackend struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// OpenFile loads the YAML store at path. A missing file yields an empty
// store. An unreadable or malformed file also yields an empty, usable store
// together with the error so callers can report it.
func OpenFile(path string) (*FileBackend, error) {
	backend := &FileBackend{
		path:   path,
		values: make(map[string]string),
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return backend, nil
		}
		return backend, fmt.Errorf("read storage file: %w", err)
	}

	var fileData map[string]string
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return backend, fmt.Errorf("parse storage yaml: %w", err)
	}
	for key, value := range fileData {
		backend.values[key] = value
	}
	return backend, nil
}

// Path returns the location of the YAML file.
func (backend *FileBackend) Path() string {
	return backend.path
}

// Get returns the value stored under key.
func (backend *FileBackend) Get(key string) (string, bool) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	value, ok := backend.values[key]
	return value, ok
}

// Set stores value under key and rewrites the file.
func (backend *FileBackend) Set(key, value string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	previous, existed := backend.values[key]
	backend.values[key] = value
	if err := backend.writeLocked(); err != nil {
		if existed {
			backend.values[key] = previous
		} else {
			delete(backend.values, key)
		}
		return err
	}
	return nil
}

func (backend *FileBackend) writeLocked() error {
	if err := os.MkdirAll(filepath.Dir(backend.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	serialized, err := yaml.Marshal(backend.values)
	if err != nil {
		return fmt.Errorf("marshal storage yaml: %w", err)
	}

	if err := os.WriteFile(backend.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	return nil
}
