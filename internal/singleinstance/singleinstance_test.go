package singleinstance

import (
	"os"
	"os/exec"
	"strconv"
	"testing"
)

// exitedPID starts the test binary with no tests selected and returns its PID after it exits
func exitedPID(t *testing.T) int {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	if err := cmd.Run(); err != nil {
		t.Fatalf("running child process: %v", err)
	}
	return cmd.Process.Pid
}

func TestTryLockIsExclusive(t *testing.T) {
	dir := t.TempDir()
	first := NewSingleInstanceInDir(dir, "langswitch")
	second := NewSingleInstanceInDir(dir, "langswitch")

	ok, err := first.TryLock()
	if err != nil || !ok {
		t.Fatalf("first TryLock = %v, %v; want true, nil", ok, err)
	}

	ok, err = second.TryLock()
	if err != nil || ok {
		t.Fatalf("second TryLock = %v, %v; want false, nil", ok, err)
	}

	running, pid, err := second.GetRunningInstanceInfo()
	if err != nil || !running || pid != os.Getpid() {
		t.Errorf("GetRunningInstanceInfo = %v, %d, %v; want true, %d, nil", running, pid, err, os.Getpid())
	}

	first.Release()

	ok, err = second.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock after release = %v, %v; want true, nil", ok, err)
	}
	second.Release()

	if _, err := os.Stat(second.LockPath()); !os.IsNotExist(err) {
		t.Errorf("Expected lock file to be removed, stat err = %v", err)
	}
}

func TestTryLockReplacesCorruptLock(t *testing.T) {
	si := NewSingleInstanceInDir(t.TempDir(), "langswitch")
	if err := os.WriteFile(si.LockPath(), []byte("not-a-pid"), 0600); err != nil {
		t.Fatalf("writing lock: %v", err)
	}

	ok, err := si.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock over corrupt lock = %v, %v; want true, nil", ok, err)
	}
	si.Release()
}

func TestReleaseWithoutLockKeepsFile(t *testing.T) {
	dir := t.TempDir()
	holder := NewSingleInstanceInDir(dir, "langswitch")
	if ok, _ := holder.TryLock(); !ok {
		t.Fatal("holder could not lock")
	}
	defer holder.Release()

	other := NewSingleInstanceInDir(dir, "langswitch")
	other.Release()

	if _, err := os.Stat(holder.LockPath()); err != nil {
		t.Errorf("Release by non-holder removed the lock: %v", err)
	}
}

func TestIsProcessRunning(t *testing.T) {
	tests := []struct {
		name     string
		pid      int
		expected bool
	}{
		{"own process", os.Getpid(), true},
		{"parent process", os.Getppid(), true},
		{"exited process", exitedPID(t), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := isProcessRunning(test.pid); got != test.expected {
				t.Errorf("isProcessRunning(%d) = %v, want %v", test.pid, got, test.expected)
			}
		})
	}
}

func TestTryLockReplacesStaleLock(t *testing.T) {
	si := NewSingleInstanceInDir(t.TempDir(), "langswitch")
	pid := exitedPID(t)
	if err := os.WriteFile(si.LockPath(), []byte(strconv.Itoa(pid)), 0600); err != nil {
		t.Fatalf("writing lock: %v", err)
	}

	running, gotPID, err := si.GetRunningInstanceInfo()
	if err != nil || running || gotPID != pid {
		t.Fatalf("GetRunningInstanceInfo = %v, %d, %v; want false, %d, nil", running, gotPID, err, pid)
	}

	ok, err := si.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock over stale lock = %v, %v; want true, nil", ok, err)
	}
	defer si.Release()

	running, gotPID, err = si.GetRunningInstanceInfo()
	if err != nil || !running || gotPID != os.Getpid() {
		t.Errorf("GetRunningInstanceInfo after TryLock = %v, %d, %v; want true, %d, nil", running, gotPID, err, os.Getpid())
	}
}
