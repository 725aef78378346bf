// Package storage persists user settings and the completed pomodoro counter.
package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"pomodoro/internal/core/model"
)

// Keys used in the backend.
const (
	SettingsKey = "pomodoroSettings"
	CountKey    = "pomodoroCount"
)

// JSON field names inside the settings value.
const (
	fieldFocus         = "pomodoroTime"
	fieldShortBreak    = "shortBreakTime"
	fieldLongBreak     = "longBreakTime"
	fieldSound         = "soundEnabled"
	fieldNotifications = "notificationEnabled"
)

// Store reads and writes settings and the counter through a Backend.
type Store struct {
	backend Backend
}

// New creates a store over backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load returns the persisted settings merged over the defaults and the
// persisted counter. Anything missing or malformed falls back to its default.
func (store *Store) Load() (model.Settings, int) {
	settings := model.DefaultSettings()
	if raw, ok := store.backend.Get(SettingsKey); ok {
		settings = DecodeSettings(raw, settings)
	}

	count := 0
	if raw, ok := store.backend.Get(CountKey); ok {
		count = ParseCount(raw)
	}
	return settings, count
}

// SaveSettings writes settings under SettingsKey.
func (store *Store) SaveSettings(settings model.Settings) error {
	encoded, err := EncodeSettings(settings)
	if err != nil {
		return err
	}
	if err := store.backend.Set(SettingsKey, encoded); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCount writes the counter under CountKey.
func (store *Store) SaveCount(count int) error {
	if err := store.backend.Set(CountKey, strconv.Itoa(count)); err != nil {
		return fmt.Errorf("save count: %w", err)
	}
	return nil
}

// EncodeSettings renders settings as JSON.
func EncodeSettings(settings model.Settings) (string, error) {
	fields := []struct {
		path  string
		value any
	}{
		{fieldFocus, settings.FocusMinutes},
		{fieldShortBreak, settings.ShortBreakMinutes},
		{fieldLongBreak, settings.LongBreakMinutes},
		{fieldSound, settings.SoundEnabled},
		{fieldNotifications, settings.NotificationEnabled},
	}

	encoded := "{}"
	for _, field := range fields {
		var err error
		encoded, err = sjson.Set(encoded, field.path, field.value)
		if err != nil {
			return "", fmt.Errorf("encode settings field %s: %w", field.path, err)
		}
	}
	return encoded, nil
}

// DecodeSettings overlays the fields present in raw onto base. Durations
// must be positive integers and flags must be booleans; other values are
// ignored.
func DecodeSettings(raw string, base model.Settings) model.Settings {
	if !gjson.Valid(raw) {
		return base
	}

	settings := base
	applyMinutes(raw, fieldFocus, &settings.FocusMinutes)
	applyMinutes(raw, fieldShortBreak, &settings.ShortBreakMinutes)
	applyMinutes(raw, fieldLongBreak, &settings.LongBreakMinutes)
	applyFlag(raw, fieldSound, &settings.SoundEnabled)
	applyFlag(raw, fieldNotifications, &settings.NotificationEnabled)
	return settings
}

// ParseCount reads a persisted counter. Malformed or negative values read
// as zero.
func ParseCount(raw string) int {
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || count < 0 {
		return 0
	}
	return count
}

func applyMinutes(raw, path string, target *int) {
	result := gjson.Get(raw, path)
	if result.Type != gjson.Number {
		return
	}
	minutes := result.Int()
	if minutes <= 0 || float64(minutes) != result.Float() {
		return
	}
	*target = int(minutes)
}

func applyFlag(raw, path string, target *bool) {
	result := gjson.Get(raw, path)
	if result.Type != gjson.True && result.Type != gjson.False {
		return
	}
	*target = result.Bool()
}
