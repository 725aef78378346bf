package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/storage"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	labelColor  = color.New(color.FgHiBlack).SprintFunc()
	onColor     = color.New(color.FgGreen).SprintFunc()
	offColor    = color.New(color.FgRed).SprintFunc()
)

func newStatusCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show settings and the completed pomodoro count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := opts.newLogger(os.Stderr)
			store, path, err := opts.openFileStore(log)
			if err != nil {
				return err
			}
			settings, completed := store.Load()

			if asJSON {
				return writeStatusJSON(cmd.OutOrStdout(), settings, completed, path)
			}
			writeStatus(cmd.OutOrStdout(), settings, completed, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeStatus(out io.Writer, settings model.Settings, completed int, path string) {
	fmt.Fprintln(out, headerColor("🍅 "+appName))
	fmt.Fprintf(out, "  %s %s\n", labelColor("Storage:      "), path)
	fmt.Fprintf(out, "  %s %d (%s)\n", labelColor("Completed:    "), completed, nextRest(completed))
	for _, phase := range model.Phases {
		fmt.Fprintf(out, "  %s %d min\n", labelColor(fmt.Sprintf("%-14s", phase.IdleName()+":")), settings.Minutes(phase))
	}
	fmt.Fprintf(out, "  %s %s\n", labelColor("Sound:        "), onOff(settings.SoundEnabled))
	fmt.Fprintf(out, "  %s %s\n", labelColor("Notifications:"), onOff(settings.NotificationEnabled))
}

func writeStatusJSON(out io.Writer, settings model.Settings, completed int, path string) error {
	raw, err := statusJSON(settings, completed, path)
	if err != nil {
		return err
	}
	raw = pretty.Pretty(raw)
	if !color.NoColor {
		raw = pretty.Color(raw, nil)
	}
	_, err = out.Write(raw)
	return err
}

func statusJSON(settings model.Settings, completed int, path string) ([]byte, error) {
	encoded, err := storage.EncodeSettings(settings)
	if err != nil {
		return nil, err
	}

	doc := []byte("{}")
	if doc, err = sjson.SetRawBytes(doc, "settings", []byte(encoded)); err != nil {
		return nil, fmt.Errorf("encode status: %w", err)
	}
	for _, phase := range model.Phases {
		if doc, err = sjson.SetBytes(doc, "phases."+phase.String(), settings.Seconds(phase)); err != nil {
			return nil, fmt.Errorf("encode status: %w", err)
		}
	}
	if doc, err = sjson.SetBytes(doc, "completed", completed); err != nil {
		return nil, fmt.Errorf("encode status: %w", err)
	}
	if doc, err = sjson.SetBytes(doc, "path", path); err != nil {
		return nil, fmt.Errorf("encode status: %w", err)
	}
	return doc, nil
}

func nextRest(completed int) string {
	left := timekeeper.LongRestEvery - completed%timekeeper.LongRestEvery
	if left == 1 {
		return "long rest after the next pomodoro"
	}
	return fmt.Sprintf("long rest in %d pomodoros", left)
}

func onOff(enabled bool) string {
	if enabled {
		return onColor("on")
	}
	return offColor("off")
}
