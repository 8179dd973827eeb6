package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Entry is one line of the logbook.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// String renders e the way it is stored: RFC 3339 time, padded level, message.
func (e Entry) String() string {
	return fmt.Sprintf("%s %-5s %s", e.Time.UTC().Format(time.RFC3339), e.Level, e.Message)
}

// Logbook appends launcher activity to a text file shared by the TUI and the
// subcommands. A nil *Logbook discards everything.
type Logbook struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// New creates a logbook at path, creating its directory.
func New(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure log dir: %w", err)
	}
	return &Logbook{path: path, now: time.Now}, nil
}

// DefaultPath returns <user cache dir>/<app>/<app>.log.
func DefaultPath(app string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("logbook: locate cache dir: %w", err)
	}
	return filepath.Join(dir, app, app+".log"), nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes one entry. Write failures are dropped; the logbook never
// blocks a launch.
func (l *Logbook) Append(level Level, message string) {
	if l == nil {
		return
	}
	message = strings.Join(strings.Fields(message), " ")
	if message == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	entry := Entry{Time: now(), Level: level, Message: message}
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = fmt.Fprintln(file, entry.String())
}

// Tail returns up to maxLines of the most recent lines, oldest first.
func (l *Logbook) Tail(maxLines int) []string {
	if l == nil || maxLines <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer file.Close()

	ring := make([]string, maxLines)
	seen := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		ring[seen%maxLines] = scanner.Text()
		seen++
	}
	if seen == 0 {
		return nil
	}
	if seen <= maxLines {
		return ring[:seen]
	}
	start := seen % maxLines
	return append(ring[start:], ring[:start]...)
}

// Info appends an informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.Append(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (l *Logbook) Warn(format string, args ...any) {
	l.Append(LevelWarn, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (l *Logbook) Error(format string, args ...any) {
	l.Append(LevelError, fmt.Sprintf(format, args...))
}

// Notify records a user-facing notification at its level.
func (l *Logbook) Notify(n Notification) {
	switch n.Severity() {
	case LevelError:
		l.Error("%s", n)
	case LevelWarn:
		l.Warn("%s", n)
	default:
		l.Info("%s", n)
	}
}
