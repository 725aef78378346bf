package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	backend, err := OpenFile(path)
	require.NoError(t, err)

	_, ok := backend.Get(CountKey)
	assert.False(t, ok)
	assert.Equal(t, path, backend.Path())
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	backend, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, backend.Set(CountKey, "3"))
	require.NoError(t, backend.Set(SettingsKey, `{"pomodoroTime":30}`))

	reopened, err := OpenFile(path)
	require.NoError(t, err)

	count, ok := reopened.Get(CountKey)
	require.True(t, ok)
	assert.Equal(t, "3", count)

	settings, count2 := New(reopened).Load()
	assert.Equal(t, 30, settings.FocusMinutes)
	assert.Equal(t, 3, count2)
}

func TestOpenFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("pomodoroCount: [unterminated"), 0o644))

	backend, err := OpenFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse storage yaml")
	require.NotNil(t, backend)

	settings, count := New(backend).Load()
	assert.Equal(t, 25, settings.FocusMinutes)
	assert.Equal(t, 0, count)

	require.NoError(t, backend.Set(CountKey, "1"))
	reopened, err := OpenFile(path)
	require.NoError(t, err)
	value, _ := reopened.Get(CountKey)
	assert.Equal(t, "1", value)
}

func TestFileBackendSetFailureKeepsPreviousValue(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	backend, err := OpenFile(filepath.Join(blocker, FileName))
	require.Error(t, err)

	err = backend.Set(CountKey, "2")
	require.Error(t, err)
	_, ok := backend.Get(CountKey)
	assert.False(t, ok)
}
