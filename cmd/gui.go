package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/dispatch"
	"pomodoro/internal/logger"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/animation"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerwindow"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Run the desktop app (default)",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGUI(opts)
		},
	}
}

func runGUI(opts *options) error {
	log := opts.newLogger(os.Stderr)

	lock, err := platform.LockInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	store, err := opts.desktopStore(fyneApp, log)
	if err != nil {
		return err
	}
	settings, completed := store.Load()
	log.Info("loaded settings: focus %d min, short break %d min, long break %d min, %d completed",
		settings.FocusMinutes, settings.ShortBreakMinutes, settings.LongBreakMinutes, completed)

	keeper := timekeeper.New(settings, completed, timekeeper.Config{AppName: appName})
	defer keeper.Close()

	notifier := notify.New(notify.NewAppPoster(fyneApp), newSounder(log), log)
	notifier.RequestPermission()
	dispatcher := dispatch.New(store, notifier, log)
	dispatcher.Attach(keeper)

	timer := timerwindow.New(fyneApp, appName, keeper)
	prefsWindow := preferences.New(fyneApp, keeper.Settings(), keeper.UpdateSettings)
	timer.SetOnSettings(prefsWindow.Show)

	view := &desktopView{
		snapshot: keeper.Snapshot,
		timer:    timer,
		prefs:    prefsWindow,
	}

	var trayManager *tray.Manager
	var blink *animation.Engine
	stopBlink := func() {
		if blink != nil {
			blink.Stop()
		}
	}
	timer.SetOnCommand(stopBlink)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{
			Running: resources.MustIcon(resources.IconActive),
			Idle:    resources.MustIcon(resources.IconPaused),
		}, tray.Callbacks{
			OnToggle: func() {
				stopBlink()
				keeper.Toggle()
			},
			OnReset: func() {
				stopBlink()
				keeper.Reset()
			},
			OnSwitch: func(phase model.Phase) {
				timer.Show()
				timer.RequestSwitch(phase)
			},
			OnShowTimer:   timer.Show,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		trayManager.Render(keeper.Snapshot())
		desktopApp.SetSystemTrayWindow(timer.Window())

		blink = animation.New(animation.DefaultConfig(), func(icon fyne.Resource) {
			fyne.Do(func() {
				trayManager.SetIcon(icon)
			})
		})
		view.tray = trayManager
		view.blink = blink
	} else {
		log.Warn("system tray unsupported on this platform")
	}

	events := keeper.Subscribe(256)
	go func() {
		for effect := range events {
			fyne.Do(func() {
				view.handle(effect)
			})
		}
	}()

	timer.Show()
	fyneApp.Run()
	stopBlink()
	dispatcher.Wait()
	return nil
}

type effectApplier interface {
	Apply(effect timekeeper.Effect)
}

type settingsView interface {
	UpdateSettings(settings model.Settings)
}

type stateView interface {
	Render(state timekeeper.State)
}

type blinker interface {
	StartBlink(ctx context.Context, spec animation.BlinkSpec)
}

// desktopView routes keeper effects to the desktop widgets on the UI
// goroutine. The subscription drops effects when the UI falls behind, so
// state effects are redrawn from a fresh snapshot. A dropped completion
// only loses its blink.
type desktopView struct {
	snapshot func() timekeeper.State
	timer    effectApplier
	prefs    settingsView
	tray     stateView
	blink    blinker
}

func (view *desktopView) handle(effect timekeeper.Effect) {
	if effect.Type == timekeeper.EffectState {
		effect.State = view.snapshot()
	}
	view.timer.Apply(effect)

	switch effect.Type {
	case timekeeper.EffectPersistSettings:
		view.prefs.UpdateSettings(effect.Settings)
	case timekeeper.EffectState:
		if view.tray != nil {
			view.tray.Render(effect.State)
		}
	case timekeeper.EffectComplete:
		if view.blink == nil {
			return
		}
		// Completion always leaves the timer idle.
		view.blink.StartBlink(context.Background(), animation.BlinkSpec{
			On:    resources.MustIcon(resources.IconDone),
			Off:   resources.MustIcon(resources.IconActive),
			Final: resources.MustIcon(resources.IconPaused),
		})
	}
}

func (opts *options) desktopStore(fyneApp fyne.App, log *logger.Logger) (*storage.Store, error) {
	if opts.store == storePreferences {
		log.Debug("storage: app preferences")
		return storage.New(storage.NewPreferencesBackend(fyneApp.Preferences())), nil
	}
	store, _, err := opts.openFileStore(log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}
