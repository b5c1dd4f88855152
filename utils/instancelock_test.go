package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLockName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234567890", "1234567890"},
		{"../etc/passwd", "etc-passwd"},
		{"forum id", "forum-id"},
		{"", "default"},
		{"...", "default"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, sanitizeLockName(test.input), "sanitizeLockName(%q)", test.input)
	}
}

func TestNewInstanceLock(t *testing.T) {
	baseDir := t.TempDir()

	lock, err := NewInstanceLock(baseDir, "1234567890")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(baseDir, "forumbot", "1234567890.lock"), lock.LockPath())
	_, err = os.Stat(filepath.Dir(lock.LockPath()))
	assert.NoError(t, err, "lock directory should be created")
}

func TestInstanceLock_SecondInstanceIsRejected(t *testing.T) {
	baseDir := t.TempDir()

	first, err := NewInstanceLock(baseDir, "1234567890")
	require.NoError(t, err)
	second, err := NewInstanceLock(baseDir, "1234567890")
	require.NoError(t, err)

	require.NoError(t, first.TryLock())

	err = second.TryLock()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "another bot instance is already running")

	require.NoError(t, first.Unlock())
	_, err = os.Stat(first.LockPath())
	assert.True(t, os.IsNotExist(err), "lock file should be removed on unlock")

	require.NoError(t, second.TryLock())
	require.NoError(t, second.Unlock())
}

func TestInstanceLock_DifferentForumsDoNotConflict(t *testing.T) {
	baseDir := t.TempDir()

	first, err := NewInstanceLock(baseDir, "111")
	require.NoError(t, err)
	second, err := NewInstanceLock(baseDir, "222")
	require.NoError(t, err)

	require.NoError(t, first.TryLock())
	require.NoError(t, second.TryLock())
	require.NoError(t, first.Unlock())
	require.NoError(t, second.Unlock())
}
