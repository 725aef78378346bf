package storage

import "fyne.io/fyne/v2"

// PreferencesBackend stores values in the fyne application preferences.
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend wraps the preferences of a fyne app.
func NewPreferencesBackend(prefs fyne.Preferences) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs}
}

// Get returns the value stored under key. Empty values count as absent.
func (backend *PreferencesBackend) Get(key string) (string, bool) {
	value := backend.prefs.StringWithFallback(key, "")
	return value, value != ""
}

// Set stores value under key.
func (backend *PreferencesBackend) Set(key, value string) error {
	backend.prefs.SetString(key, value)
	return nil
}
