package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

type fakeHost struct {
	menu  *fyne.Menu
	icons []fyne.Resource
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menu = menu
}

func (host *fakeHost) SetSystemTrayIcon(icon fyne.Resource) {
	host.icons = append(host.icons, icon)
}

func (host *fakeHost) item(t *testing.T, label string) *fyne.MenuItem {
	t.Helper()
	require.NotNil(t, host.menu)
	for _, item := range host.menu.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu item %q not found", label)
	return nil
}

var (
	runningIcon = fyne.NewStaticResource("running", []byte("r"))
	idleIcon    = fyne.NewStaticResource("idle", []byte("i"))
)

func TestNewBuildsMenu(t *testing.T) {
	host := &fakeHost{}
	New(host, Icons{Running: runningIcon, Idle: idleIcon}, Callbacks{})

	require.NotNil(t, host.menu)
	assert.Equal(t, "Pomodoro", host.menu.Label)
	assert.Equal(t, []fyne.Resource{idleIcon}, host.icons)

	switchItem := host.item(t, "Switch to")
	require.NotNil(t, switchItem.ChildMenu)
	require.Len(t, switchItem.ChildMenu.Items, 3)
	assert.Equal(t, "Focus Mode", switchItem.ChildMenu.Items[0].Label)
	assert.Equal(t, "Long Break", switchItem.ChildMenu.Items[2].Label)
	assert.True(t, host.item(t, "Quit").IsQuit)
}

func TestCallbacks(t *testing.T) {
	host := &fakeHost{}
	var calls []string
	var switched []model.Phase
	New(host, Icons{}, Callbacks{
		OnToggle:      func() { calls = append(calls, "toggle") },
		OnReset:       func() { calls = append(calls, "reset") },
		OnSwitch:      func(phase model.Phase) { switched = append(switched, phase) },
		OnShowTimer:   func() { calls = append(calls, "show") },
		OnPreferences: func() { calls = append(calls, "prefs") },
		OnQuit:        func() { calls = append(calls, "quit") },
	})

	host.item(t, timekeeper.ToggleStart).Action()
	host.item(t, "Reset").Action()
	host.item(t, "Show timer").Action()
	host.item(t, "Preferences").Action()
	host.item(t, "Quit").Action()
	host.item(t, "Switch to").ChildMenu.Items[1].Action()

	assert.Equal(t, []string{"toggle", "reset", "show", "prefs", "quit"}, calls)
	assert.Equal(t, []model.Phase{model.PhaseShortBreak}, switched)
}

func TestMissingCallbacksAreIgnored(t *testing.T) {
	host := &fakeHost{}
	New(host, Icons{}, Callbacks{})

	assert.NotPanics(t, func() {
		host.item(t, timekeeper.ToggleStart).Action()
		host.item(t, "Switch to").ChildMenu.Items[0].Action()
	})
	assert.Empty(t, host.icons)
}

func TestRender(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, Icons{Running: runningIcon, Idle: idleIcon}, Callbacks{})

	manager.Render(timekeeper.State{Phase: model.PhaseShortBreak, Remaining: 299, Total: 300, Running: true, Completed: 2})
	assert.Equal(t, "Status: Short Break 04:59 · 2 done", host.menu.Items[0].Label)
	host.item(t, timekeeper.TogglePause)
	assert.True(t, host.item(t, "Switch to").ChildMenu.Items[1].Checked)
	assert.False(t, host.item(t, "Switch to").ChildMenu.Items[0].Checked)
	assert.Equal(t, []fyne.Resource{idleIcon, runningIcon}, host.icons)

	manager.Render(timekeeper.State{Phase: model.PhaseShortBreak, Remaining: 298, Total: 300, Running: true, Completed: 2})
	assert.Len(t, host.icons, 2)

	manager.Render(timekeeper.State{Phase: model.PhaseShortBreak, Remaining: 298, Total: 300, Completed: 2})
	host.item(t, timekeeper.ToggleResume)
	assert.Equal(t, idleIcon, manager.StateIcon())
	assert.Equal(t, []fyne.Resource{idleIcon, runningIcon, idleIcon}, host.icons)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		state timekeeper.State
		want  string
	}{
		{timekeeper.State{Phase: model.PhaseFocus, Remaining: 1500, Total: 1500}, "Status: Focus Mode 25:00 (idle) · 0 done"},
		{timekeeper.State{Phase: model.PhaseFocus, Remaining: 100, Total: 1500}, "Status: Focus Mode 01:40 (paused) · 0 done"},
		{timekeeper.State{Phase: model.PhaseLongBreak, Remaining: 0, Total: 900, Completed: 4}, "Status: Long Break 00:00 (done) · 4 done"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.state))
		})
	}
}
