package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/animation"
	"pomodoro/resources"
)

type fakeTimer struct {
	effects []timekeeper.Effect
}

func (timer *fakeTimer) Apply(effect timekeeper.Effect) {
	timer.effects = append(timer.effects, effect)
}

type fakePrefs struct {
	settings []model.Settings
}

func (prefs *fakePrefs) UpdateSettings(settings model.Settings) {
	prefs.settings = append(prefs.settings, settings)
}

type fakeTray struct {
	states []timekeeper.State
}

func (tray *fakeTray) Render(state timekeeper.State) {
	tray.states = append(tray.states, state)
}

type fakeBlink struct {
	specs []animation.BlinkSpec
}

func (blink *fakeBlink) StartBlink(_ context.Context, spec animation.BlinkSpec) {
	blink.specs = append(blink.specs, spec)
}

func newView(current timekeeper.State) (*desktopView, *fakeTimer, *fakePrefs, *fakeTray, *fakeBlink) {
	timer, prefs, tray, blink := &fakeTimer{}, &fakePrefs{}, &fakeTray{}, &fakeBlink{}
	view := &desktopView{
		snapshot: func() timekeeper.State { return current },
		timer:    timer,
		prefs:    prefs,
		tray:     tray,
		blink:    blink,
	}
	return view, timer, prefs, tray, blink
}

func TestDesktopViewRendersStateFromSnapshot(t *testing.T) {
	current := timekeeper.State{Phase: model.PhaseFocus, Remaining: 1200, Total: 1500, Running: true, Completed: 2}
	view, timer, _, tray, blink := newView(current)

	stale := timekeeper.State{Phase: model.PhaseFocus, Remaining: 1500, Total: 1500}
	view.handle(timekeeper.Effect{Type: timekeeper.EffectState, State: stale})

	require.Len(t, timer.effects, 1)
	assert.Equal(t, current, timer.effects[0].State)
	assert.Equal(t, []timekeeper.State{current}, tray.states)
	assert.Empty(t, blink.specs)
}

func TestDesktopViewRoutesSettingsToPreferences(t *testing.T) {
	view, timer, prefs, tray, _ := newView(timekeeper.State{})

	settings := model.DefaultSettings()
	settings.FocusMinutes = 50
	view.handle(timekeeper.Effect{Type: timekeeper.EffectPersistSettings, Settings: settings})

	assert.Equal(t, []model.Settings{settings}, prefs.settings)
	assert.Len(t, timer.effects, 1)
	assert.Empty(t, tray.states)
}

func TestDesktopViewBlinksOnCompletion(t *testing.T) {
	view, timer, _, tray, blink := newView(timekeeper.State{})

	view.handle(timekeeper.Effect{Type: timekeeper.EffectComplete})

	require.Len(t, blink.specs, 1)
	assert.Equal(t, resources.MustIcon(resources.IconDone), blink.specs[0].On)
	assert.Equal(t, resources.MustIcon(resources.IconActive), blink.specs[0].Off)
	assert.Equal(t, resources.MustIcon(resources.IconPaused), blink.specs[0].Final)
	assert.Len(t, timer.effects, 1)
	assert.Empty(t, tray.states)
}

func TestDesktopViewWithoutTray(t *testing.T) {
	current := timekeeper.State{Phase: model.PhaseShortBreak, Remaining: 300, Total: 300}
	timer, prefs := &fakeTimer{}, &fakePrefs{}
	view := &desktopView{
		snapshot: func() timekeeper.State { return current },
		timer:    timer,
		prefs:    prefs,
	}

	assert.NotPanics(t, func() {
		view.handle(timekeeper.Effect{Type: timekeeper.EffectState})
		view.handle(timekeeper.Effect{Type: timekeeper.EffectComplete})
		view.handle(timekeeper.Effect{Type: timekeeper.EffectPersistSettings, Settings: model.DefaultSettings()})
	})
	assert.Len(t, timer.effects, 3)
	assert.Equal(t, current, timer.effects[0].State)
	assert.Len(t, prefs.settings, 1)
}
