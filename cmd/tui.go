package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/dispatch"
	"pomodoro/internal/logger"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/tui"
)

const logFileName = "pomodoro.log"

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Long: `Run the timer in the terminal.

Keys: space start/pause, r reset, 1/2/3 switch phase, ? help, q quit.
Logs go to ` + logFileName + ` in the data directory so they do not
disturb the screen.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
}

func runTUI(opts *options) error {
	log, closeLog, err := opts.fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	lock, err := platform.LockInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	store, _, err := opts.openFileStore(log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	settings, completed := store.Load()

	keeper := timekeeper.New(settings, completed, timekeeper.Config{AppName: appName})
	defer keeper.Close()

	// The terminal shows notifications itself, so no poster is configured.
	notifier := notify.New(nil, newSounder(log), log)
	notifier.RequestPermission()
	dispatcher := dispatch.New(store, notifier, log)
	dispatcher.Attach(keeper)
	defer dispatcher.Wait()

	effects := keeper.Subscribe(256)
	if err := tui.Run(keeper, effects, appName, tea.WithAltScreen()); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func (opts *options) fileLogger() (*logger.Logger, func(), error) {
	if opts.quiet {
		return logger.Discard(), func() {}, nil
	}
	dir, err := opts.resolveDataDir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	file, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return opts.newLogger(file), func() { _ = file.Close() }, nil
}
