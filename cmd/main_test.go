package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"pomodoro/internal/core/model"
	"pomodoro/internal/logger"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestStatusDefaults(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "status", "--quiet", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, storage.FileName))
	assert.Contains(t, out, "Completed:     0 (long rest in 4 pomodoros)")
	assert.Contains(t, out, "Focus Mode:    25 min")
	assert.Contains(t, out, "Long Break:    15 min")
	assert.Contains(t, out, "Sound:         on")
}

func TestStatusJSON(t *testing.T) {
	dir := t.TempDir()
	backend, err := storage.OpenFile(filepath.Join(dir, storage.FileName))
	require.NoError(t, err)
	require.NoError(t, storage.New(backend).SaveCount(3))

	out, err := execute(t, "status", "--json", "-q", "--data-dir", dir)
	require.NoError(t, err)
	require.True(t, gjson.Valid(out), out)

	assert.Equal(t, int64(3), gjson.Get(out, "completed").Int())
	assert.Equal(t, int64(25), gjson.Get(out, "settings.pomodoroTime").Int())
	assert.Equal(t, int64(300), gjson.Get(out, "phases.short_break").Int())
	assert.True(t, gjson.Get(out, "settings.notificationEnabled").Bool())
	assert.Equal(t, filepath.Join(dir, storage.FileName), gjson.Get(out, "path").String())
}

func TestSettingsUpdatePersists(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "settings", "-q", "--data-dir", dir, "--focus", "50", "--sound=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Focus Mode:    50 min")
	assert.Contains(t, out, "Sound:         off")

	backend, err := storage.OpenFile(filepath.Join(dir, storage.FileName))
	require.NoError(t, err)
	settings, completed := storage.New(backend).Load()

	want := model.DefaultSettings()
	want.FocusMinutes = 50
	want.SoundEnabled = false
	assert.Equal(t, want, settings)
	assert.Equal(t, 0, completed)

	_, ok := backend.Get(storage.CountKey)
	assert.True(t, ok, "saving settings also writes the counter")
}

func TestSettingsWithoutFlagsDoesNotWrite(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "settings", "-q", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Focus Mode:    25 min")

	_, err = os.Stat(filepath.Join(dir, storage.FileName))
	assert.True(t, os.IsNotExist(err))
}

func TestSettingsRejectsNonPositiveDurations(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "settings", "-q", "--data-dir", dir, "--short", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotPositive)

	_, err = os.Stat(filepath.Join(dir, storage.FileName))
	assert.True(t, os.IsNotExist(err))
}

func TestSettingsRefusedWhileTimerRuns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, storage.FileName)
	backend, err := storage.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, storage.New(backend).SaveCount(1))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	lock, err := platform.LockInstance(appName)
	if err != nil {
		t.Skipf("instance lock unavailable: %v", err)
	}
	defer func() {
		_ = lock.Release()
	}()

	_, err = execute(t, "settings", "-q", "--data-dir", dir, "--focus", "50")
	require.Error(t, err)
	assert.ErrorIs(t, err, errTimerRunning)
	assert.ErrorIs(t, err, platform.ErrAlreadyRunning)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	out, err := execute(t, "settings", "-q", "--data-dir", dir)
	require.NoError(t, err, "printing settings needs no lock")
	assert.Contains(t, out, "Focus Mode:    25 min")
}

func TestStoreFlag(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "status", "-q", "--data-dir", dir, "--store", storePreferences)
	assert.ErrorIs(t, err, errPreferencesNeedDesktop)

	_, err = execute(t, "status", "-q", "--data-dir", dir, "--store", "cloud")
	assert.ErrorContains(t, err, `unknown store "cloud"`)
}

func TestDataDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("POMODORO_DATA_DIR", dir)

	out, err := execute(t, "status", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, storage.FileName))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.LevelOff, (&options{quiet: true, verbose: true}).logLevel())
	assert.Equal(t, logger.LevelNormal, (&options{}).logLevel())
	assert.Equal(t, logger.LevelVerbose, (&options{verbose: true}).logLevel())
}

func TestNextRest(t *testing.T) {
	assert.Equal(t, "long rest in 4 pomodoros", nextRest(0))
	assert.Equal(t, "long rest in 2 pomodoros", nextRest(2))
	assert.Equal(t, "long rest after the next pomodoro", nextRest(3))
	assert.Equal(t, "long rest in 4 pomodoros", nextRest(8))
}

func TestAutostartStatus(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "autostart", "-q")
	if err != nil {
		t.Skipf("autostart unsupported here: %v", err)
	}
	assert.Equal(t, "autostart: off\n", out)
}
