package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pomodoro/internal/platform"
)

func newAutostartCmd(opts *options) *cobra.Command {
	service := platform.NewAutostart(appName)

	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Start the desktop app at login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enabled, err := service.Enabled()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "autostart: %s\n", onOff(enabled))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Launch the desktop app at login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate executable: %w", err)
			}
			if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
				execPath = resolved
			}
			if err := service.Enable(execPath); err != nil {
				return err
			}
			opts.newLogger(os.Stderr).Debug("autostart entry points to %s", execPath)
			fmt.Fprintf(cmd.OutOrStdout(), "autostart: %s\n", onOff(true))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Stop launching the desktop app at login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := service.Disable(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "autostart: %s\n", onOff(false))
			return nil
		},
	})
	return cmd
}
