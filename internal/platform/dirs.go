// Package platform holds OS-facing helpers: data directory resolution, the
// single-instance lock and launch-at-login registration.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirEnv overrides the data directory when set.
const DataDirEnv = "POMODORO_DATA_DIR"

// DataDir returns the directory holding persisted timer data: the value of
// $POMODORO_DATA_DIR, or <user config dir>/<appName>.
func DataDir(appName string) (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}

	dir, err := configDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(dir, appName), nil
}
