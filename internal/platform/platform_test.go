package platform

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	for _, name := range []string{"Pomodoro", "pomodoro", "", "a much longer application name"} {
		port := portFromName(name)
		assert.GreaterOrEqual(t, port, 20000)
		assert.LessOrEqual(t, port, 39999)
		assert.Equal(t, port, portFromName(name))
	}
}

func TestLockInstance(t *testing.T) {
	name := "pomodoro-test-" + strings.ReplaceAll(t.Name(), "/", "-")

	lock, err := LockInstance(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}

	_, err = LockInstance(name)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, lock.Release())
	require.NoError(t, lock.Release())

	again, err := LockInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestReleaseNil(t *testing.T) {
	var lock *InstanceLock
	assert.NoError(t, lock.Release())
}

func TestDataDirFromEnv(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv(DataDirEnv, dir)

	got, err := DataDir("Pomodoro")
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestDataDirDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv(DataDirEnv, "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
	t.Setenv("HOME", home)

	got, err := DataDir("Pomodoro")
	require.NoError(t, err)
	assert.Equal(t, "Pomodoro", filepath.Base(got))
}

func TestEntryName(t *testing.T) {
	assert.Equal(t, "pomodoro", entryName("Pomodoro"))
	assert.Equal(t, "focus-timer", entryName("  Focus Timer "))
	assert.Equal(t, "pomodoro", entryName(""))
}

func TestLaunchArgsCannotBeChanged(t *testing.T) {
	args := launchArgs()
	args[0] = "tui"
	assert.Equal(t, []string{"gui"}, launchArgs())
}
