//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *autostart) Enable(execPath string) error {
	if err := service.check("enable", execPath, true); err != nil {
		return err
	}

	command := exec.Command(
		"reg",
		"add",
		registryRunKey,
		"/v",
		service.appName,
		"/t",
		"REG_SZ",
		"/d",
		commandLine(execPath),
		"/f",
	)
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("enable autostart: reg add failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (service *autostart) Disable() error {
	if err := service.check("disable", "", false); err != nil {
		return err
	}

	enabled, err := service.Enabled()
	if err != nil || !enabled {
		return err
	}

	command := exec.Command("reg", "delete", registryRunKey, "/v", service.appName, "/f")
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("disable autostart: reg delete failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Enabled reports whether the run key holds a value for the app. reg query
// exits non-zero when the value is missing.
func (service *autostart) Enabled() (bool, error) {
	command := exec.Command("reg", "query", registryRunKey, "/v", service.appName)
	if err := command.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, fmt.Errorf("query autostart: %w", err)
	}
	return true, nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func commandLine(execPath string) string {
	trimmed := strings.Trim(execPath, `"`)
	return fmt.Sprintf(`"%s" %s`, trimmed, strings.Join(launchArgs(), " "))
}
