package storage

import "sync"

// Backend is a string-keyed store that survives restarts.
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemoryBackend keeps values in memory. It is used by tests and by hosts
// that run without a data directory.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (backend *MemoryBackend) Get(key string) (string, bool) {
	backend.mu.RLock()
	defer backend.mu.RUnlock()
	value, ok := backend.values[key]
	return value, ok
}

// Set stores value under key.
func (backend *MemoryBackend) Set(key, value string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.values[key] = value
	return nil
}
