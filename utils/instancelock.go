package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofrs/flock"
)

var unsafeLockNameChars = regexp.MustCompile(`[^\w\-.]`)

// InstanceLock makes sure only one bot process governs a given forum channel on this host,
// so new threads don't get auto-pinned twice
type InstanceLock struct {
	lockFile *flock.Flock
	lockPath string
}

// sanitizeLockName converts an identifier to a safe filename
func sanitizeLockName(name string) string {
	sanitized := unsafeLockNameChars.ReplaceAllString(name, "-")
	sanitized = strings.Trim(sanitized, ".-")
	if sanitized == "" {
		sanitized = "default"
	}
	return sanitized
}

// NewInstanceLock creates a lock for the forum channel inside baseDir.
// An empty baseDir uses the system temp directory.
func NewInstanceLock(baseDir, forumChannelID string) (*InstanceLock, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}

	lockDir := filepath.Join(baseDir, "forumbot")
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	lockPath := filepath.Join(lockDir, fmt.Sprintf("%s.lock", sanitizeLockName(forumChannelID)))
	return &InstanceLock{
		lockFile: flock.New(lockPath),
		lockPath: lockPath,
	}, nil
}

// TryLock attempts to acquire the lock without blocking
func (l *InstanceLock) TryLock() error {
	locked, err := l.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to try lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another bot instance is already running for this forum channel (lock: %s)", l.lockPath)
	}
	return nil
}

// Unlock releases the lock and removes the lock file
func (l *InstanceLock) Unlock() error {
	if err := l.lockFile.Unlock(); err != nil {
		return fmt.Errorf("failed to unlock: %w", err)
	}
	if err := os.Remove(l.lockPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// LockPath returns the path to the lock file
func (l *InstanceLock) LockPath() string {
	return l.lockPath
}
