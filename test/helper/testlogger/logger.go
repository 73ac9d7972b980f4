// Package testlogger provides a capturing logger implementation for tests
// that assert on log output.
package testlogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// LogEntry represents a single log entry
type LogEntry struct {
	Level   string
	Message string
}

// TestLogger implements log.Logger and records every entry
type TestLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// New creates a new TestLogger
func New() *TestLogger {
	return &TestLogger{
		entries: make([]LogEntry, 0),
	}
}

func (l *TestLogger) log(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.entries = append(l.entries, LogEntry{Level: level, Message: msg})
}

// Entries returns a copy of the recorded entries
func (l *TestLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)

	return out
}

// Contains reports whether any recorded message contains the substring
func (l *TestLogger) Contains(substr string) bool {
	for _, e := range l.Entries() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}

	return false
}

func (l *TestLogger) Debug(args ...any)                 { l.log("DEBUG", fmt.Sprint(args...)) }
func (l *TestLogger) Debugf(format string, args ...any) { l.log("DEBUG", format, args...) }
func (l *TestLogger) Debugln(args ...any)               { l.log("DEBUG", fmt.Sprintln(args...)) }
func (l *TestLogger) Info(args ...any)                  { l.log("INFO", fmt.Sprint(args...)) }
func (l *TestLogger) Infof(format string, args ...any)  { l.log("INFO", format, args...) }
func (l *TestLogger) Infoln(args ...any)                { l.log("INFO", fmt.Sprintln(args...)) }
func (l *TestLogger) Warn(args ...any)                  { l.log("WARN", fmt.Sprint(args...)) }
func (l *TestLogger) Warnf(format string, args ...any)  { l.log("WARN", format, args...) }
func (l *TestLogger) Warnln(args ...any)                { l.log("WARN", fmt.Sprintln(args...)) }
func (l *TestLogger) Error(args ...any)                 { l.log("ERROR", fmt.Sprint(args...)) }
func (l *TestLogger) Errorf(format string, args ...any) { l.log("ERROR", format, args...) }
func (l *TestLogger) Errorln(args ...any)               { l.log("ERROR", fmt.Sprintln(args...)) }
func (l *TestLogger) Fatal(args ...any)                 { l.log("FATAL", fmt.Sprint(args...)) }
func (l *TestLogger) Fatalf(format string, args ...any) { l.log("FATAL", format, args...) }
func (l *TestLogger) Fatalln(args ...any)               { l.log("FATAL", fmt.Sprintln(args...)) }

func (l *TestLogger) WithDefaultMessageTemplate(tpl string) log.Logger { return l }
func (l *TestLogger) WithFields(fields ...any) log.Logger              { return l }
func (l *TestLogger) Sync() error                                      { return nil }
