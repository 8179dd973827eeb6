package logbook

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Style distinguishes successful outcomes from failures.
type Style string

const (
	StyleSuccess Style = "success"
	StyleFailure Style = "failure"
)

// Notification is a single user-visible message, such as "Profiles loaded".
// Level is optional; when empty, failures log as ERROR and the rest as INFO.
type Notification struct {
	Style   Style
	Level   Level
	Title   string
	Message string
}

// Severity returns the level n is logged at.
func (n Notification) Severity() Level {
	switch {
	case n.Level != "":
		return n.Level
	case n.Style == StyleFailure:
		return LevelError
	default:
		return LevelInfo
	}
}

func (n Notification) String() string {
	title := strings.TrimSpace(n.Title)
	msg := strings.TrimSpace(n.Message)
	if msg == "" {
		return title
	}
	return fmt.Sprintf("%s · %s", title, msg)
}

// Notifier receives user-visible notifications.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	if f != nil {
		f(n)
	}
}

// Tee fans a notification out to every non-nil notifier.
func Tee(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(n Notification) {
		for _, target := range notifiers {
			if target != nil {
				target.Notify(n)
			}
		}
	})
}

// Writer prints notifications as single lines, e.g. to stderr.
func Writer(w io.Writer) Notifier {
	var mu sync.Mutex
	return NotifierFunc(func(n Notification) {
		mu.Lock()
		defer mu.Unlock()
		marker := "✓"
		if n.Style == StyleFailure {
			marker = "✗"
		}
		fmt.Fprintf(w, "%s %s\n", marker, n.String())
	})
}

// Recorder keeps every notification it receives. Useful in tests and for the
// TUI footer.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// Notify stores n.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
