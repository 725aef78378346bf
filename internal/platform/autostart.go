package platform

import (
	"fmt"
	"os"
	"strings"
)

// Autostart registers the desktop app to launch at login.
type Autostart interface {
	Enable(execPath string) error
	Disable() error
	Enabled() (bool, error)
}

type autostart struct {
	appName string
}

// NewAutostart returns the platform-specific autostart registration for
// appName.
func NewAutostart(appName string) Autostart {
	return &autostart{appName: appName}
}

// launchArgs are passed to the executable when it starts at login.
func launchArgs() []string {
	return []string{"gui"}
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err == nil && dir != "" {
		return dir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return fallbackConfigDir(homeDir), nil
}

func entryName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "pomodoro"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}

func (service *autostart) check(action, execPath string, needPath bool) error {
	if service.appName == "" {
		return fmt.Errorf("%s autostart: app name is empty", action)
	}
	if needPath && execPath == "" {
		return fmt.Errorf("%s autostart: exec path is empty", action)
	}
	return nil
}
