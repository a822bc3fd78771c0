//go:build !windows

package singleinstance

import (
	"os"
	"syscall"
)

func isProcessRunning(pid int) bool {
	if pid == os.Getpid() {
		return true
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// signal 0 checks existence without delivering anything
	return process.Signal(syscall.Signal(0)) == nil
}
