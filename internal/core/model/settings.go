package model

// Default durations in minutes.
const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
)

// Settings contains user preferences persisted between sessions.
type Settings struct {
	FocusMinutes        int
	ShortBreakMinutes   int
	LongBreakMinutes    int
	SoundEnabled        bool
	NotificationEnabled bool
}

// DefaultSettings returns the settings used when nothing was persisted.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:        DefaultFocusMinutes,
		ShortBreakMinutes:   DefaultShortBreakMinutes,
		LongBreakMinutes:    DefaultLongBreakMinutes,
		SoundEnabled:        true,
		NotificationEnabled: true,
	}
}

// Minutes returns the configured duration of a phase.
func (settings Settings) Minutes(phase Phase) int {
	switch phase {
	case PhaseFocus:
		return settings.FocusMinutes
	case PhaseShortBreak:
		return settings.ShortBreakMinutes
	case PhaseLongBreak:
		return settings.LongBreakMinutes
	default:
		return DefaultFocusMinutes
	}
}

// Seconds returns the configured duration of a phase in seconds.
func (settings Settings) Seconds(phase Phase) int {
	return settings.Minutes(phase) * 60
}
