package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/user/tinyrender/pkg/ports"
)

// LogEntry is one message recorded by Logger.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger is a ports.Logger that records every message.
// Component loggers share the parent's entries.
type Logger struct {
	component string
	shared    *logStore
}

type logStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogger creates a new recording Logger.
func NewLogger() *Logger {
	return &Logger{shared: &logStore{}}
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.record(ports.LevelDebug, msg, args) }

func (l *Logger) Info(msg string, args ...interface{}) { l.record(ports.LevelInfo, msg, args) }

func (l *Logger) Warn(msg string, args ...interface{}) { l.record(ports.LevelWarn, msg, args) }

func (l *Logger) Error(msg string, args ...interface{}) { l.record(ports.LevelError, msg, args) }

func (l *Logger) WithComponent(component string) ports.Logger {
	return &Logger{component: component, shared: l.shared}
}

func (l *Logger) record(level ports.LogLevel, msg string, args []interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	l.shared.entries = append(l.shared.entries, LogEntry{Level: level, Component: l.component, Message: msg})
}

// Entries returns a copy of the recorded messages.
func (l *Logger) Entries() []LogEntry {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	return append([]LogEntry(nil), l.shared.entries...)
}

// Count returns the number of messages recorded at level.
func (l *Logger) Count(level ports.LogLevel) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Contains reports whether any message at level contains substr.
func (l *Logger) Contains(level ports.LogLevel, substr string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

var _ ports.Logger = (*Logger)(nil)
