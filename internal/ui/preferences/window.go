package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      model.Settings
	onSave        func(model.Settings)
	onCancel      func()
	focus         *widget.Entry
	shortBreak    *widget.Entry
	longBreak     *widget.Entry
	sound         *widget.Check
	notifications *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	focus := widget.NewEntry()
	shortBreak := widget.NewEntry()
	longBreak := widget.NewEntry()
	sound := widget.NewCheck("Play a sound when a phase ends", nil)
	notifications := widget.NewCheck("Show notifications", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus"), focus, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longBreak, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Alerts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		notifications,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 320))

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		focus:         focus,
		shortBreak:    shortBreak,
		longBreak:     longBreak,
		sound:         sound,
		notifications: notifications,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	}
	window.SetCloseIntercept(cancelButton.OnTapped)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// SetOnCancel sets the callback fired when the window is dismissed without
// saving.
func (prefs *Window) SetOnCancel(handler func()) {
	prefs.onCancel = handler
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	values := ValuesOf(settings)
	prefs.focus.SetText(values.Focus)
	prefs.shortBreak.SetText(values.ShortBreak)
	prefs.longBreak.SetText(values.LongBreak)
	prefs.sound.SetChecked(values.Sound)
	prefs.notifications.SetChecked(values.Notifications)
}

func (prefs *Window) values() Values {
	return Values{
		Focus:         prefs.focus.Text,
		ShortBreak:    prefs.shortBreak.Text,
		LongBreak:     prefs.longBreak.Text,
		Sound:         prefs.sound.Checked,
		Notifications: prefs.notifications.Checked,
	}
}

func (prefs *Window) handleSave() {
	settings := prefs.values().Apply(prefs.settings)
	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
