package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the editor log file, relative to the working directory (project root when run via go run ./cmd/editor).
const DefaultPath = "logs/editor.txt"

// timestampLayout prefixes every entry, e.g. "[2026-10-18 14:03:07] mode: view -> edit".
const timestampLayout = "2006-01-02 15:04:05"

// Logger keeps editor events and console output in memory (the console shows the tail) and
// appends each line to a file on disk. An empty path keeps lines in memory only.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger appending to path and ensures its directory exists.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Log stamps line with the local time, stores it and appends it to the log file.
// File errors are ignored; the in-memory copy is always kept.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format(timestampLayout) + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns a copy of the last n stored lines (fewer if there are not that many).
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := max(len(l.lines)-n, 0)
	out := make([]string, len(l.lines)-start)
	copy(out, l.lines[start:])
	return out
}
