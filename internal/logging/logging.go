// internal/logging/logging.go
// Package logging configures the process-wide logger for the analyzer.
// Reports and charts own stdout, so log output goes to stderr and,
// when configured, to a log file as well.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes log output to stderr plus the given file. An empty path means
// stderr only. Calling Init again closes the previous file.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file, if any, and restores stderr-only output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent writes a formatted event line.
func LogEvent(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}

// LogFileOutcome writes one structured line about a processed input file.
func LogFileOutcome(stage, name string, err error) {
	log.Println(buildFileMessage(stage, name, err))
}

func buildFileMessage(stage, name string, err error) string {
	stageValue := strings.TrimSpace(stage)
	if stageValue != "" {
		stageValue = strings.ToUpper(stageValue)
	}
	nameValue := strings.TrimSpace(name)
	if nameValue == "" {
		nameValue = "unknown"
	}
	parts := []string{fmt.Sprintf("[%s]", stageValue)}
	parts = append(parts, fmt.Sprintf("file=%s", nameValue))
	if err != nil {
		parts = append(parts, fmt.Sprintf("error=%v", err))
	} else {
		parts = append(parts, "ok")
	}
	return strings.Join(parts, " ")
}
