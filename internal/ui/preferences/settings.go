package preferences

import (
	"strconv"
	"strings"

	"pomodoro/internal/core/model"
)

// Values holds the raw contents of the preferences form.
type Values struct {
	Focus         string
	ShortBreak    string
	LongBreak     string
	Sound         bool
	Notifications bool
}

// ValuesOf fills the form from settings.
func ValuesOf(settings model.Settings) Values {
	return Values{
		Focus:         strconv.Itoa(settings.FocusMinutes),
		ShortBreak:    strconv.Itoa(settings.ShortBreakMinutes),
		LongBreak:     strconv.Itoa(settings.LongBreakMinutes),
		Sound:         settings.SoundEnabled,
		Notifications: settings.NotificationEnabled,
	}
}

// Apply returns base updated with the form values. A duration that is not a
// positive integer keeps its value from base.
func (values Values) Apply(base model.Settings) model.Settings {
	settings := base
	if minutes, ok := parsePositiveInt(values.Focus); ok {
		settings.FocusMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(values.ShortBreak); ok {
		settings.ShortBreakMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(values.LongBreak); ok {
		settings.LongBreakMinutes = minutes
	}
	settings.SoundEnabled = values.Sound
	settings.NotificationEnabled = values.Notifications
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
