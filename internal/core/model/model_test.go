package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, 25, settings.FocusMinutes)
	assert.Equal(t, 5, settings.ShortBreakMinutes)
	assert.Equal(t, 15, settings.LongBreakMinutes)
	assert.True(t, settings.SoundEnabled)
	assert.True(t, settings.NotificationEnabled)
}

func TestSettingsSeconds(t *testing.T) {
	settings := Settings{FocusMinutes: 30, ShortBreakMinutes: 3, LongBreakMinutes: 20}

	assert.Equal(t, 1800, settings.Seconds(PhaseFocus))
	assert.Equal(t, 180, settings.Seconds(PhaseShortBreak))
	assert.Equal(t, 1200, settings.Seconds(PhaseLongBreak))
}

func TestPhaseLabels(t *testing.T) {
	tests := []struct {
		phase    Phase
		running  string
		complete string
		idle     string
	}{
		{PhaseFocus, "focusing…", "focus complete", "Focus Mode"},
		{PhaseShortBreak, "short break…", "short break ended", "Short Break"},
		{PhaseLongBreak, "long break…", "long break ended", "Long Break"},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			assert.Equal(t, tt.running, tt.phase.RunningLabel())
			assert.Equal(t, tt.complete, tt.phase.CompleteLabel())
			assert.Equal(t, tt.idle, tt.phase.IdleName())
			assert.True(t, tt.phase.Valid())
		})
	}
}

func TestParsePhase(t *testing.T) {
	tests := []struct {
		input string
		want  Phase
	}{
		{"focus", PhaseFocus},
		{"pomodoro", PhaseFocus},
		{"shortBreak", PhaseShortBreak},
		{"short_break", PhaseShortBreak},
		{" long ", PhaseLongBreak},
		{"LongBreak", PhaseLongBreak},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			phase, err := ParsePhase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, phase)
		})
	}

	_, err := ParsePhase("nap")
	assert.Error(t, err)
	assert.False(t, Phase(7).Valid())
	assert.Equal(t, "phase(7)", Phase(7).String())
}
