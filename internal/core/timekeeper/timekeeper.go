package timekeeper

import (
	"fmt"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Notification texts emitted on completion and on settings save.
const (
	FocusCompleteTitle = "Pomodoro complete!"
	LongRestBody       = "You've finished 4 pomodoros, time for a longer rest!"
	ShortRestBody      = "Take a short break!"
	BreakOverTitle     = "Break over!"
	BreakOverBody      = "Ready to start a new pomodoro!"
	SettingsSavedTitle = "Settings saved"
	SettingsSavedBody  = "Your settings have been saved!"
)

// LongRestEvery is the number of completed focus phases after which a
// longer rest is suggested.
const LongRestEvery = 4

// Config contains runtime options for TimeKeeper.
type Config struct {
	Ticks   TickSource
	AppName string
}

// TimeKeeper is the pomodoro state machine. All transitions run under one
// mutex, and their effects are delivered before the transition returns.
// Handlers must not call back into the TimeKeeper.
type TimeKeeper struct {
	mu         sync.Mutex
	settings   model.Settings
	options    Config
	state      State
	stopTick   func()
	generation uint64
	handlers   []Handler
	events     []chan Effect
	closed     bool
}

// New creates an idle TimeKeeper in the focus phase.
func New(settings model.Settings, completed int, options Config) *TimeKeeper {
	if options.Ticks == nil {
		options.Ticks = NewIntervalSource(time.Second)
	}
	if options.AppName == "" {
		options.AppName = "Pomodoro"
	}
	if completed < 0 {
		completed = 0
	}

	keeper := &TimeKeeper{
		settings: settings,
		options:  options,
		state: State{
			Phase:     model.PhaseFocus,
			Completed: completed,
		},
	}
	keeper.rewindLocked()
	return keeper
}

// Handle registers a synchronous effect handler.
func (keeper *TimeKeeper) Handle(handler Handler) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.handlers = append(keeper.handlers, handler)
}

// Subscribe registers a new observer channel. Sends never block, so a
// consumer that falls behind misses effects.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Effect {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Effect, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		close(ch)
	} else {
		keeper.events = append(keeper.events, ch)
	}
	keeper.mu.Unlock()
	return ch
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Settings returns the current settings.
func (keeper *TimeKeeper) Settings() model.Settings {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.settings
}

// Title returns the window title for the current state.
func (keeper *TimeKeeper) Title() string {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.titleLocked()
}

// Start begins the countdown. Calling Start while running does nothing.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state.Running || keeper.closed {
		return
	}

	keeper.startTicksLocked()
	keeper.state.Running = true
	keeper.emitLocked(
		keeper.labelLocked(keeper.state.Phase.RunningLabel()),
		keeper.stateLocked(),
	)
}

// Pause freezes the countdown. Calling Pause while idle does nothing.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.state.Running {
		return
	}
	keeper.pauseLocked()
}

// Toggle pauses a running timer and starts an idle one.
func (keeper *TimeKeeper) Toggle() {
	keeper.mu.Lock()
	running := keeper.state.Running
	keeper.mu.Unlock()

	if running {
		keeper.Pause()
		return
	}
	keeper.Start()
}

// Reset pauses the timer and restores the full duration of the current phase.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state.Running {
		keeper.pauseLocked()
	}

	keeper.rewindLocked()
	keeper.emitLocked(
		keeper.displayLocked(),
		keeper.labelLocked(keeper.state.Phase.IdleName()),
		keeper.stateLocked(),
	)
}

// SwitchPhase pauses the timer and makes target the current phase with its
// full duration. Switching to the current phase behaves like Reset plus a
// phase effect. Callers confirm with the user before switching a running
// timer.
func (keeper *TimeKeeper) SwitchPhase(target model.Phase) {
	if !target.Valid() {
		return
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state.Running {
		keeper.pauseLocked()
	}

	keeper.state.Phase = target
	keeper.rewindLocked()
	keeper.emitLocked(
		Effect{Type: EffectPhase, State: keeper.state},
		keeper.displayLocked(),
		keeper.labelLocked(target.IdleName()),
		keeper.stateLocked(),
	)
}

// UpdateSettings replaces the settings and requests that they are saved.
// An idle timer adopts the new duration immediately; a running timer keeps
// its remaining time until the next reset or switch.
func (keeper *TimeKeeper) UpdateSettings(settings model.Settings) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.settings = settings
	effects := []Effect{{
		Type:     EffectPersistSettings,
		State:    keeper.state,
		Settings: settings,
	}}

	if !keeper.state.Running {
		keeper.rewindLocked()
		effects = append(effects, keeper.displayLocked())
	}
	if settings.NotificationEnabled {
		effects = append(effects, keeper.notifyLocked(SettingsSavedTitle, SettingsSavedBody))
	}
	effects = append(effects, keeper.stateLocked())
	keeper.emitLocked(effects...)
}

// Close stops ticking and closes every subscriber channel.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.stopTicksLocked()
	keeper.state.Running = false
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.state.Running || generation != keeper.generation {
		return
	}

	keeper.state.Remaining--
	if keeper.state.Remaining <= 0 {
		keeper.state.Remaining = 0
	}
	keeper.emitLocked(keeper.displayLocked())

	if keeper.state.Remaining == 0 {
		keeper.completeLocked()
	}
}

func (keeper *TimeKeeper) completeLocked() {
	keeper.haltLocked()

	var effects []Effect
	title, body := BreakOverTitle, BreakOverBody
	if keeper.state.Phase == model.PhaseFocus {
		keeper.state.Completed++
		effects = append(effects, Effect{Type: EffectPersistCount, State: keeper.state})

		title, body = FocusCompleteTitle, ShortRestBody
		if keeper.state.Completed%LongRestEvery == 0 {
			body = LongRestBody
		}
	}

	if keeper.settings.NotificationEnabled {
		effects = append(effects, keeper.notifyLocked(title, body))
	}
	if keeper.settings.SoundEnabled {
		effects = append(effects, Effect{Type: EffectTone, State: keeper.state})
	}
	effects = append(effects,
		keeper.labelLocked(keeper.state.Phase.CompleteLabel()),
		Effect{Type: EffectComplete, State: keeper.state},
		keeper.stateLocked(),
	)
	keeper.emitLocked(effects...)
}

func (keeper *TimeKeeper) pauseLocked() {
	keeper.haltLocked()
	keeper.emitLocked(
		keeper.labelLocked(model.PausedLabel),
		keeper.stateLocked(),
	)
}

func (keeper *TimeKeeper) haltLocked() {
	keeper.stopTicksLocked()
	keeper.state.Running = false
}

func (keeper *TimeKeeper) rewindLocked() {
	keeper.state.Total = keeper.settings.Seconds(keeper.state.Phase)
	keeper.state.Remaining = keeper.state.Total
}

func (keeper *TimeKeeper) startTicksLocked() {
	keeper.stopTicksLocked()
	keeper.generation++
	generation := keeper.generation
	keeper.stopTick = keeper.options.Ticks.Start(func() {
		keeper.tick(generation)
	})
}

func (keeper *TimeKeeper) stopTicksLocked() {
	if keeper.stopTick == nil {
		return
	}
	keeper.stopTick()
	keeper.stopTick = nil
	keeper.generation++
}

func (keeper *TimeKeeper) titleLocked() string {
	return fmt.Sprintf("%s - %s", keeper.state.Display(), keeper.options.AppName)
}

func (keeper *TimeKeeper) displayLocked() Effect {
	return Effect{
		Type:    EffectDisplay,
		State:   keeper.state,
		Display: keeper.state.Display(),
		Title:   keeper.titleLocked(),
	}
}

func (keeper *TimeKeeper) labelLocked(label string) Effect {
	return Effect{Type: EffectLabel, State: keeper.state, Label: label}
}

func (keeper *TimeKeeper) notifyLocked(title, body string) Effect {
	return Effect{Type: EffectNotify, State: keeper.state, NotifyTitle: title, NotifyBody: body}
}

func (keeper *TimeKeeper) stateLocked() Effect {
	return Effect{Type: EffectState, State: keeper.state}
}

func (keeper *TimeKeeper) emitLocked(effects ...Effect) {
	for _, effect := range effects {
		for _, handler := range keeper.handlers {
			handler(effect)
		}
		for _, ch := range keeper.events {
			select {
			case ch <- effect:
			default:
			}
		}
	}
}
