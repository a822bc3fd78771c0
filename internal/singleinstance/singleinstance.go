package singleinstance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SingleInstance keeps a second bridge from starting on the same machine
type SingleInstance struct {
	lockFile *os.File
	lockPath string
}

// NewSingleInstance creates a lock manager using the OS temp directory
func NewSingleInstance(appName string) *SingleInstance {
	return NewSingleInstanceInDir(os.TempDir(), appName)
}

// NewSingleInstanceInDir creates a lock manager with the lock file in dir
func NewSingleInstanceInDir(dir, appName string) *SingleInstance {
	return &SingleInstance{
		lockPath: filepath.Join(dir, fmt.Sprintf("%s.lock", appName)),
	}
}

// LockPath returns the lock file location
func (si *SingleInstance) LockPath() string {
	return si.lockPath
}

// TryLock returns true if the lock was acquired, false if another live instance holds it
func (si *SingleInstance) TryLock() (bool, error) {
	return si.tryLock(true)
}

func (si *SingleInstance) tryLock(retryStale bool) (bool, error) {
	file, err := os.OpenFile(si.lockPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			if si.holderRunning() || !retryStale {
				return false, nil
			}
			// stale lock from a dead process
			os.Remove(si.lockPath)
			return si.tryLock(false)
		}
		return false, fmt.Errorf("failed to create lock file: %w", err)
	}

	if _, err := file.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		file.Close()
		os.Remove(si.lockPath)
		return false, fmt.Errorf("failed to write PID to lock file: %w", err)
	}

	si.lockFile = file
	return true, nil
}

// holderRunning reports whether the PID in the lock file belongs to a live process
func (si *SingleInstance) holderRunning() bool {
	running, _, err := si.GetRunningInstanceInfo()
	return err == nil && running
}

// Release closes and removes the lock file if this instance holds it
func (si *SingleInstance) Release() {
	if si.lockFile == nil {
		return
	}
	si.lockFile.Close()
	si.lockFile = nil
	os.Remove(si.lockPath)
}

// GetRunningInstanceInfo returns whether a locked instance is running and its PID
func (si *SingleInstance) GetRunningInstanceInfo() (bool, int, error) {
	data, err := os.ReadFile(si.lockPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}

	pidStr := strings.TrimSpace(string(data))
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return false, 0, fmt.Errorf("invalid PID in lock file: %s", pidStr)
	}

	return isProcessRunning(pid), pid, nil
}
