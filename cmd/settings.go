package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/dispatch"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

var (
	errNotPositive  = errors.New("must be a positive number of minutes")
	errTimerRunning = errors.New("quit the running timer before changing settings")
)

var settingsFlagNames = []string{"focus", "short", "long", "sound", "notifications"}

func newSettingsCmd(opts *options) *cobra.Command {
	var flags settingsFlags
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Change durations and alerts",
		Long: `Change durations and alerts. Only the flags you pass are changed;
running without flags prints the current settings. Changes are refused
while the desktop or terminal timer is running.`,
		Example: `  pomodoro settings --focus 50 --short 10
  pomodoro settings --sound=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := opts.newLogger(os.Stderr)

			// A running timer rewrites the whole file from its own copy.
			if changesRequested(cmd.Flags()) {
				lock, err := platform.LockInstance(appName)
				if err != nil {
					return fmt.Errorf("%w: %w", errTimerRunning, err)
				}
				defer func() {
					_ = lock.Release()
				}()
			}

			store, path, err := opts.openFileStore(log)
			if err != nil {
				return err
			}
			current, completed := store.Load()

			updated, err := flags.apply(cmd.Flags(), current)
			if err != nil {
				return err
			}
			if updated != current {
				keeper := timekeeper.New(current, completed, timekeeper.Config{AppName: appName})
				notifier := notify.New(notify.NewLogPoster(log), nil, log)
				notifier.RequestPermission()
				saver := &errorStore{store: store}
				dispatch.New(saver, notifier, log).Attach(keeper)

				keeper.UpdateSettings(updated)
				keeper.Close()
				if saver.err != nil {
					return saver.err
				}
			}

			writeStatus(cmd.OutOrStdout(), updated, completed, path)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.focus, "focus", 0, "focus duration in minutes")
	cmd.Flags().IntVar(&flags.short, "short", 0, "short break duration in minutes")
	cmd.Flags().IntVar(&flags.long, "long", 0, "long break duration in minutes")
	cmd.Flags().BoolVar(&flags.sound, "sound", true, "play a tone when a phase ends")
	cmd.Flags().BoolVar(&flags.notifications, "notifications", true, "show a notification when a phase ends")
	return cmd
}

type settingsFlags struct {
	focus         int
	short         int
	long          int
	sound         bool
	notifications bool
}

func changesRequested(set *pflag.FlagSet) bool {
	for _, name := range settingsFlagNames {
		if set.Changed(name) {
			return true
		}
	}
	return false
}

func (flags settingsFlags) apply(set *pflag.FlagSet, settings model.Settings) (model.Settings, error) {
	minutes := []struct {
		name   string
		value  int
		target *int
	}{
		{"focus", flags.focus, &settings.FocusMinutes},
		{"short", flags.short, &settings.ShortBreakMinutes},
		{"long", flags.long, &settings.LongBreakMinutes},
	}
	for _, m := range minutes {
		if !set.Changed(m.name) {
			continue
		}
		if m.value <= 0 {
			return settings, fmt.Errorf("--%s %d: %w", m.name, m.value, errNotPositive)
		}
		*m.target = m.value
	}
	if set.Changed("sound") {
		settings.SoundEnabled = flags.sound
	}
	if set.Changed("notifications") {
		settings.NotificationEnabled = flags.notifications
	}
	return settings, nil
}

// errorStore keeps the first save error so the command can report it.
type errorStore struct {
	store *storage.Store
	err   error
}

func (s *errorStore) SaveSettings(settings model.Settings) error {
	return s.keep(s.store.SaveSettings(settings))
}

func (s *errorStore) SaveCount(count int) error {
	return s.keep(s.store.SaveCount(count))
}

func (s *errorStore) keep(err error) error {
	if err != nil && s.err == nil {
		s.err = err
	}
	return err
}
