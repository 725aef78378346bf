package timekeeper

import (
	"fmt"

	"pomodoro/internal/core/model"
)

// EffectType identifies what a host or collaborator must do with an Effect.
type EffectType string

const (
	EffectDisplay         EffectType = "display"
	EffectLabel           EffectType = "label"
	EffectPhase           EffectType = "phase"
	EffectState           EffectType = "state"
	EffectTone            EffectType = "tone"
	EffectNotify          EffectType = "notify"
	EffectComplete        EffectType = "complete"
	EffectPersistCount    EffectType = "persist_count"
	EffectPersistSettings EffectType = "persist_settings"
)

// State is a snapshot of the timer.
type State struct {
	Phase     model.Phase
	Remaining int // seconds
	Total     int // seconds Remaining was last reset from
	Running   bool
	Completed int
}

// Display renders the remaining time as MM:SS.
func (state State) Display() string {
	return FormatClock(state.Remaining)
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (state State) Progress() float64 {
	if state.Total <= 0 {
		return 1
	}
	progress := float64(state.Total-state.Remaining) / float64(state.Total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Toggle button texts.
const (
	ToggleStart  = "Start"
	TogglePause  = "Pause"
	ToggleResume = "Resume"
)

// ToggleLabel names the action a start/pause control performs next. A phase
// that has counted down at all resumes rather than starts.
func (state State) ToggleLabel() string {
	switch {
	case state.Running:
		return TogglePause
	case state.Remaining < state.Total:
		return ToggleResume
	default:
		return ToggleStart
	}
}

// Effect is a side-effect request produced by a transition. Every effect
// carries the state as it was after the transition.
type Effect struct {
	Type  EffectType
	State State

	Display string // EffectDisplay
	Title   string // EffectDisplay

	Label string // EffectLabel

	NotifyTitle string // EffectNotify
	NotifyBody  string // EffectNotify

	Settings model.Settings // EffectPersistSettings
}

// Handler receives effects synchronously, in emission order.
type Handler func(Effect)

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
