// Package launcher opens a Windows Terminal profile in a new wt.exe process.
//
// The command is built as an argument vector and started without a shell,
// so profile names and GUIDs are passed through verbatim.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kingrea/wtlaunch/internal/logbook"
	"github.com/kingrea/wtlaunch/internal/profiles"
)

const (
	// DefaultExecutable is the Windows Terminal command-line entry point.
	DefaultExecutable = "wt.exe"
	// QuakeWindow is the reserved window name for the dropdown terminal.
	QuakeWindow = "_quake"

	fallbackHome = "~"
)

// LaunchError reports a failed spawn for a profile.
type LaunchError struct {
	Profile profiles.Profile
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launcher: open %s: %v", e.Profile.Name, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// StartFunc spawns cmd and returns once the process has started (not when it
// exits).
type StartFunc func(cmd *exec.Cmd) error

// Launcher starts terminal processes for profiles.
type Launcher struct {
	Executable string
	QuakeMode  bool
	Notifier   logbook.Notifier
	Getenv     func(string) string
	Start      StartFunc
}

// New returns a Launcher for the given executable.
func New(executable string, quake bool, notifier logbook.Notifier) *Launcher {
	return &Launcher{
		Executable: executable,
		QuakeMode:  quake,
		Notifier:   notifier,
	}
}

// HomeDir returns USERPROFILE, then HOME, then "~".
func (l *Launcher) HomeDir() string {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, key := range []string{"USERPROFILE", "HOME"} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
	}
	return fallbackHome
}

// Args returns the argument vector (without the executable) for p.
// The GUID is preferred over the name; wt.exe rejects duplicate GUIDs, so it
// is always unambiguous.
func (l *Launcher) Args(p profiles.Profile) []string {
	args := make([]string, 0, 6)
	if l.QuakeMode {
		args = append(args, "-w", QuakeWindow)
	}
	args = append(args, "-p", p.ID(), "-d", l.HomeDir())
	return args
}

// Command builds the unstarted process for p. It is not bound to a context
// because the terminal must outlive the launcher.
func (l *Launcher) Command(p profiles.Profile) *exec.Cmd {
	exe := strings.TrimSpace(l.Executable)
	if exe == "" {
		exe = DefaultExecutable
	}
	cmd := exec.Command(exe, l.Args(p)...)
	cmd.Dir = l.HomeDir()
	return cmd
}

// Launch spawns the terminal for p and sends one notification.
func (l *Launcher) Launch(ctx context.Context, p profiles.Profile) error {
	err := ctx.Err()
	if err == nil {
		err = l.start(l.Command(p))
	}
	if err != nil {
		l.notify(logbook.Notification{
			Style:   logbook.StyleFailure,
			Title:   "Error opening profile",
			Message: fmt.Sprintf("Failed to open %s", p.Name),
		})
		return &LaunchError{Profile: p, Err: err}
	}
	l.notify(logbook.Notification{
		Style:   logbook.StyleSuccess,
		Title:   "Profile opened",
		Message: fmt.Sprintf("Opened %s", p.Name),
	})
	return nil
}

func (l *Launcher) start(cmd *exec.Cmd) error {
	if l.Start != nil {
		return l.Start(cmd)
	}
	return startDetached(cmd)
}

// startDetached starts cmd and lets it outlive us.
func startDetached(cmd *exec.Cmd) error {
	if cmd.Dir == fallbackHome {
		cmd.Dir = ""
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func (l *Launcher) notify(n logbook.Notification) {
	if l.Notifier != nil {
		l.Notifier.Notify(n)
	}
}
