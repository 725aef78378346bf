package timerwindow

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

// SwitchConfirmMessage is asked before switching away from a running phase.
const SwitchConfirmMessage = "The timer is running, switch mode?"

// Controller is the set of timer commands the window issues.
type Controller interface {
	Toggle()
	Reset()
	SwitchPhase(target model.Phase)
	Snapshot() timekeeper.State
}

// ConfirmFunc asks the user a yes/no question and reports the answer.
type ConfirmFunc func(message string, onResult func(bool))

var phaseColors = map[model.Phase]color.NRGBA{
	model.PhaseFocus:      {R: 186, G: 73, B: 73, A: 255},
	model.PhaseShortBreak: {R: 56, G: 133, B: 138, A: 255},
	model.PhaseLongBreak:  {R: 57, G: 112, B: 151, A: 255},
}

// Window is the main timer window.
type Window struct {
	window       fyne.Window
	controller   Controller
	confirm      ConfirmFunc
	onSettings   func()
	onCommand    func()
	background   *canvas.Rectangle
	clock        *canvas.Text
	label        *canvas.Text
	counter      *widget.Label
	toggleButton *widget.Button
	resetButton  *widget.Button
	phaseButtons map[model.Phase]*widget.Button
}

// New creates the timer window. It starts hidden.
func New(app fyne.App, title string, controller Controller) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timer := &Window{
		window:       window,
		controller:   controller,
		phaseButtons: make(map[model.Phase]*widget.Button, len(model.Phases)),
	}
	timer.confirm = func(message string, onResult func(bool)) {
		dialog.ShowConfirm("Switch mode", message, onResult, window)
	}

	timer.background = canvas.NewRectangle(phaseColors[model.PhaseFocus])

	timer.clock = canvas.NewText("--:--", color.White)
	timer.clock.Alignment = fyne.TextAlignCenter
	timer.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timer.clock.TextSize = 72

	timer.label = canvas.NewText("", color.White)
	timer.label.Alignment = fyne.TextAlignCenter
	timer.label.TextSize = 18

	timer.counter = widget.NewLabel("")
	timer.counter.Alignment = fyne.TextAlignCenter

	phaseRow := container.NewGridWithColumns(len(model.Phases))
	for _, phase := range model.Phases {
		button := widget.NewButton(phase.IdleName(), func() {
			timer.RequestSwitch(phase)
		})
		timer.phaseButtons[phase] = button
		phaseRow.Add(button)
	}

	timer.toggleButton = widget.NewButton(timekeeper.ToggleStart, func() {
		timer.command()
		timer.controller.Toggle()
	})
	timer.toggleButton.Importance = widget.HighImportance
	timer.resetButton = widget.NewButton("Reset", func() {
		timer.command()
		timer.controller.Reset()
	})
	settingsButton := widget.NewButton("Settings", func() {
		if timer.onSettings != nil {
			timer.onSettings()
		}
	})

	controls := container.NewHBox(layout.NewSpacer(), timer.toggleButton, timer.resetButton, settingsButton, layout.NewSpacer())
	body := container.NewVBox(
		phaseRow,
		layout.NewSpacer(),
		timer.clock,
		timer.label,
		layout.NewSpacer(),
		controls,
		timer.counter,
	)
	window.SetContent(container.NewStack(timer.background, container.NewPadded(body)))
	window.Resize(fyne.NewSize(420, 320))
	window.SetCloseIntercept(window.Hide)

	timer.Render(controller.Snapshot())
	return timer
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// Window returns the underlying fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

// Hide hides the window.
func (timer *Window) Hide() {
	timer.window.Hide()
}

// SetOnSettings sets the handler for the Settings button.
func (timer *Window) SetOnSettings(handler func()) {
	timer.onSettings = handler
}

// SetOnCommand sets a hook fired before any timer command is issued.
func (timer *Window) SetOnCommand(handler func()) {
	timer.onCommand = handler
}

// SetConfirm replaces the confirmation prompt.
func (timer *Window) SetConfirm(confirm ConfirmFunc) {
	timer.confirm = confirm
}

// RequestSwitch switches to target, asking first when the timer is running.
func (timer *Window) RequestSwitch(target model.Phase) {
	if !timer.controller.Snapshot().Running {
		timer.command()
		timer.controller.SwitchPhase(target)
		return
	}
	timer.confirm(SwitchConfirmMessage, func(ok bool) {
		if !ok {
			return
		}
		timer.command()
		timer.controller.SwitchPhase(target)
	})
}

// Apply renders one effect. It must run on the UI goroutine.
func (timer *Window) Apply(effect timekeeper.Effect) {
	switch effect.Type {
	case timekeeper.EffectDisplay:
		timer.clock.Text = effect.Display
		timer.clock.Refresh()
		timer.window.SetTitle(effect.Title)
	case timekeeper.EffectLabel:
		timer.label.Text = effect.Label
		timer.label.Refresh()
	case timekeeper.EffectState:
		timer.renderControls(effect.State)
	}
}

// Render redraws the whole window from state.
func (timer *Window) Render(state timekeeper.State) {
	timer.clock.Text = state.Display()
	timer.clock.Refresh()
	timer.label.Text = state.Phase.IdleName()
	timer.label.Refresh()
	timer.renderControls(state)
}

func (timer *Window) renderControls(state timekeeper.State) {
	timer.toggleButton.SetText(state.ToggleLabel())
	timer.counter.SetText(fmt.Sprintf("Completed pomodoros: %d", state.Completed))

	for phase, button := range timer.phaseButtons {
		if phase == state.Phase {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}

	if fill, ok := phaseColors[state.Phase]; ok && timer.background.FillColor != fill {
		timer.background.FillColor = fill
		timer.background.Refresh()
	}
}

func (timer *Window) command() {
	if timer.onCommand != nil {
		timer.onCommand()
	}
}
