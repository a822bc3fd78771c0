package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLines(t *testing.T) {
	tests := []struct {
		name     string
		log      func(lm *LogManager)
		expected string
	}{
		{
			name:     "info with pairs",
			log:      func(lm *LogManager) { lm.LogInfo("Shortcut pressed", "keys", "alt + 1") },
			expected: "[INFO] Shortcut pressed keys=alt + 1\n",
		},
		{
			name:     "warning dangling key",
			log:      func(lm *LogManager) { lm.LogWarning("Odd", "only") },
			expected: "[WARNING] Odd\n",
		},
		{
			name:     "error with cause",
			log:      func(lm *LogManager) { lm.LogError("Press failed", errors.New("bad key"), "keys", "x") },
			expected: "[ERROR] Press failed: bad key keys=x\n",
		},
		{
			name:     "error without cause",
			log:      func(lm *LogManager) { lm.LogError("Press failed", nil) },
			expected: "[ERROR] Press failed\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			test.log(NewWithWriter(&buf))
			if buf.String() != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, buf.String())
			}
		})
	}
}

func TestLogManagerWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	lm := NewLogManager(Options{ToFile: true, Directory: dir, Prefix: "langswitch"})
	lm.LogInfo("hello", "k", "v")
	path := lm.GetLogFilePath()
	lm.Close()

	if !strings.HasPrefix(filepath.Base(path), "langswitch_") {
		t.Fatalf("unexpected log file name %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] hello k=v") {
		t.Errorf("log file missing entry, got %q", string(data))
	}
}

func TestLogManagerStdoutOnly(t *testing.T) {
	lm := NewLogManager(Options{})
	if lm.GetLogFilePath() != "" {
		t.Errorf("Expected no log file, got %s", lm.GetLogFilePath())
	}
	lm.Close()
}
