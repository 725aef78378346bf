package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pomodoro/internal/logger"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

const (
	appName = "Pomodoro"
	appID   = "com.pomodoro.app"
)

// Store kinds accepted by --store.
const (
	storeFile        = "file"
	storePreferences = "preferences"
)

var errPreferencesNeedDesktop = errors.New("the preferences store is only available to the desktop app")

type options struct {
	dataDir string
	store   string
	verbose bool
	quiet   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "pomodoro",
		Short: "Pomodoro timer for the desktop and the terminal",
		Long: `Pomodoro counts down focus sessions and short and long breaks,
remembers your durations and how many pomodoros you completed, and
alerts you with a tone and a notification when a phase ends.

Without a subcommand the desktop app starts in the system tray.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGUI(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory holding "+storage.FileName+" (default $"+platform.DataDirEnv+" or the user config dir)")
	flags.StringVar(&opts.store, "store", storeFile, "where settings are kept: file or preferences (desktop only)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "disable log output")

	root.AddCommand(newGUICmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newStatusCmd(opts))
	root.AddCommand(newSettingsCmd(opts))
	root.AddCommand(newAutostartCmd(opts))
	return root
}

func (opts *options) logLevel() logger.Level {
	switch {
	case opts.quiet:
		return logger.LevelOff
	case opts.verbose:
		return logger.LevelVerbose
	default:
		return logger.LevelNormal
	}
}

func (opts *options) newLogger(out io.Writer) *logger.Logger {
	return logger.New(opts.logLevel(), out)
}

func (opts *options) resolveDataDir() (string, error) {
	if opts.dataDir != "" {
		return opts.dataDir, nil
	}
	return platform.DataDir(appName)
}

// openFileStore opens the YAML store. A damaged file is reported and the
// timer starts from defaults.
func (opts *options) openFileStore(log *logger.Logger) (*storage.Store, string, error) {
	switch opts.store {
	case storeFile:
	case storePreferences:
		return nil, "", errPreferencesNeedDesktop
	default:
		return nil, "", fmt.Errorf("unknown store %q", opts.store)
	}

	dir, err := opts.resolveDataDir()
	if err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, storage.FileName)
	backend, err := storage.OpenFile(path)
	if err != nil {
		log.Warn("%v; using defaults", err)
	}
	log.Debug("storage file: %s", path)
	return storage.New(backend), path, nil
}

func newSounder(log *logger.Logger) notify.Sounder {
	player, err := notify.NewPlayer(log)
	if err != nil {
		log.Warn("%v; falling back to the terminal bell", err)
		return notify.NewBell(os.Stderr)
	}
	return player
}
