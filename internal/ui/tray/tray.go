package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle      func()
	OnReset       func()
	OnSwitch      func(model.Phase)
	OnShowTimer   func()
	OnPreferences func()
	OnQuit        func()
}

// Icons are the tray icons for each timer state.
type Icons struct {
	Running fyne.Resource
	Idle    fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	host       Host
	callbacks  Callbacks
	icons      Icons
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	switchItem *fyne.MenuItem
	phaseItems map[model.Phase]*fyne.MenuItem
	showItem   *fyne.MenuItem
	prefsItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	state      timekeeper.State
}

// New creates a tray manager with the provided callbacks.
func New(host Host, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:       host,
		callbacks:  callbacks,
		icons:      icons,
		phaseItems: make(map[model.Phase]*fyne.MenuItem, len(model.Phases)),
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem(timekeeper.ToggleStart, func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	phaseMenu := fyne.NewMenu("")
	for _, phase := range model.Phases {
		item := fyne.NewMenuItem(phase.IdleName(), func() {
			if manager.callbacks.OnSwitch != nil {
				manager.callbacks.OnSwitch(phase)
			}
		})
		manager.phaseItems[phase] = item
		phaseMenu.Items = append(phaseMenu.Items, item)
	}
	manager.switchItem = fyne.NewMenuItem("Switch to", nil)
	manager.switchItem.ChildMenu = phaseMenu

	manager.showItem = fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShowTimer != nil {
			manager.callbacks.OnShowTimer()
		}
	})

	manager.prefsItem = fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	if icons.Idle != nil {
		host.SetSystemTrayIcon(icons.Idle)
	}
	return manager
}

// Render updates the menu and icon for state.
func (manager *Manager) Render(state timekeeper.State) {
	runningChanged := manager.state.Running != state.Running
	manager.state = state

	manager.statusItem.Label = Status(state)
	manager.toggleItem.Label = state.ToggleLabel()
	for phase, item := range manager.phaseItems {
		item.Checked = phase == state.Phase
	}
	manager.refreshMenu()

	if runningChanged {
		manager.SetIcon(manager.StateIcon())
	}
}

// StateIcon returns the icon matching the last rendered state.
func (manager *Manager) StateIcon() fyne.Resource {
	if manager.state.Running {
		return manager.icons.Running
	}
	return manager.icons.Idle
}

// SetIcon replaces the tray icon.
func (manager *Manager) SetIcon(icon fyne.Resource) {
	if icon == nil {
		return
	}
	manager.host.SetSystemTrayIcon(icon)
}

// Status formats the tray status line.
func Status(state timekeeper.State) string {
	status := fmt.Sprintf("%s %s", state.Phase.IdleName(), state.Display())
	switch {
	case state.Running:
	case state.Remaining == 0:
		status += " (done)"
	case state.Remaining < state.Total:
		status += " (paused)"
	default:
		status += " (idle)"
	}
	return fmt.Sprintf("Status: %s · %d done", status, state.Completed)
}

func (manager *Manager) refreshMenu() {
	if manager.host == nil {
		return
	}
	manager.host.SetSystemTrayMenu(fyne.NewMenu("Pomodoro",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		manager.switchItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.prefsItem,
		manager.quitItem,
	))
}
