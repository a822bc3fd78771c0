package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Options controls where log lines go
type Options struct {
	ToFile    bool
	Directory string
	Prefix    string
}

// LogManager writes [INFO]/[WARNING]/[ERROR] lines to stdout and an optional log file
type LogManager struct {
	logFile     *os.File
	logger      *log.Logger
	logFilePath string
}

// NewLogManager creates a log manager writing to stdout and, if requested, a timestamped file
func NewLogManager(opts Options) *LogManager {
	lm := &LogManager{}

	if !opts.ToFile {
		lm.logger = log.New(os.Stdout, "", log.LstdFlags)
		return lm
	}

	dir := opts.Directory
	if dir == "" {
		dir = "logs"
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "app"
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Warning: Failed to create logs directory: %v\n", err)
		lm.logger = log.New(os.Stdout, "", log.LstdFlags)
		return lm
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	lm.logFilePath = filepath.Join(dir, fmt.Sprintf("%s_%s.log", prefix, timestamp))

	f, err := os.OpenFile(lm.logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("Warning: Failed to open log file: %v\n", err)
		lm.logFilePath = ""
		lm.logger = log.New(os.Stdout, "", log.LstdFlags)
		return lm
	}
	lm.logFile = f

	// Write to both console and file
	lm.logger = log.New(io.MultiWriter(os.Stdout, f), "", log.LstdFlags)
	lm.LogInfo("Log file created", "path", lm.logFilePath)

	return lm
}

// NewWithWriter creates a log manager that writes only to w, without timestamps
func NewWithWriter(w io.Writer) *LogManager {
	return &LogManager{logger: log.New(w, "", 0)}
}

// LogInfo logs an informational message
func (lm *LogManager) LogInfo(message string, keyValuePairs ...string) {
	lm.logger.Println(format("[INFO] "+message, keyValuePairs))
}

// LogWarning logs a warning message
func (lm *LogManager) LogWarning(message string, keyValuePairs ...string) {
	lm.logger.Println(format("[WARNING] "+message, keyValuePairs))
}

// LogError logs an error message
func (lm *LogManager) LogError(message string, err error, keyValuePairs ...string) {
	msg := "[ERROR] " + message
	if err != nil {
		msg += fmt.Sprintf(": %v", err)
	}
	lm.logger.Println(format(msg, keyValuePairs))
}

// GetLogFilePath returns the current log file path, empty when logging to stdout only
func (lm *LogManager) GetLogFilePath() string {
	return lm.logFilePath
}

// Close closes the log file
func (lm *LogManager) Close() {
	if lm.logFile != nil {
		lm.LogInfo("Closing log file")
		lm.logFile.Close()
		lm.logFile = nil
	}
}

func format(msg string, keyValuePairs []string) string {
	var b strings.Builder
	b.WriteString(msg)
	// a trailing key without value is dropped
	for i := 0; i+1 < len(keyValuePairs); i += 2 {
		fmt.Fprintf(&b, " %s=%s", keyValuePairs[i], keyValuePairs[i+1])
	}
	return b.String()
}
