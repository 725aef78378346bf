package model

import (
	"fmt"
	"strings"
)

// Phase identifies one of the three timer modes.
type Phase int

const (
	PhaseFocus Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

// PausedLabel is shown while a phase is paused.
const PausedLabel = "paused"

// Phases lists every phase in display order.
var Phases = []Phase{PhaseFocus, PhaseShortBreak, PhaseLongBreak}

type phaseLabels struct {
	id       string
	running  string
	complete string
	idle     string
}

var labels = map[Phase]phaseLabels{
	PhaseFocus:      {id: "focus", running: "focusing…", complete: "focus complete", idle: "Focus Mode"},
	PhaseShortBreak: {id: "short_break", running: "short break…", complete: "short break ended", idle: "Short Break"},
	PhaseLongBreak:  {id: "long_break", running: "long break…", complete: "long break ended", idle: "Long Break"},
}

func (phase Phase) String() string {
	if entry, ok := labels[phase]; ok {
		return entry.id
	}
	return fmt.Sprintf("phase(%d)", int(phase))
}

// RunningLabel is shown while the phase counts down.
func (phase Phase) RunningLabel() string {
	return labels[phase].running
}

// CompleteLabel is shown after the phase reaches zero.
func (phase Phase) CompleteLabel() string {
	return labels[phase].complete
}

// IdleName is shown while the phase is ready but not started.
func (phase Phase) IdleName() string {
	return labels[phase].idle
}

// Valid reports whether phase is one of the known phases.
func (phase Phase) Valid() bool {
	_, ok := labels[phase]
	return ok
}

// ParsePhase accepts the identifiers returned by String as well as the
// camel-case mode names used by older saved data and the command line.
func ParsePhase(value string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "focus", "pomodoro":
		return PhaseFocus, nil
	case "short_break", "shortbreak", "short":
		return PhaseShortBreak, nil
	case "long_break", "longbreak", "long":
		return PhaseLongBreak, nil
	default:
		return PhaseFocus, fmt.Errorf("unknown phase %q", value)
	}
}
