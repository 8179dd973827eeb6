package config

import (
	"fmt"
	"os"
	"os/user"
	"path"
	"runtime"
	"strings"
)

const (
	fallbackUserName = "User"

	// terminalPackage is the Store package directory of Windows Terminal.
	terminalPackage = "Microsoft.WindowsTerminal_8wekyb3d8bbwe"
)

// Locator resolves where the Windows Terminal settings.json lives. Nil
// lookups are skipped, so a zero Locator yields the WSL path for "User".
type Locator struct {
	GOOS        string
	Getenv      func(string) string
	CurrentUser func() (string, error)
}

// NewLocator returns a Locator backed by the real process environment.
func NewLocator() Locator {
	return Locator{
		GOOS:   runtime.GOOS,
		Getenv: os.Getenv,
		CurrentUser: func() (string, error) {
			u, err := user.Current()
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
	}
}

// ResolveSettingsPath returns override unchanged when set, otherwise the
// default settings.json path for the current user.
func ResolveSettingsPath(override string) string {
	return NewLocator().Resolve(override)
}

// Resolve returns override when it is non-empty. It never checks that the
// file exists.
func (l Locator) Resolve(override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return l.DefaultPath()
}

// DefaultPath builds the LocalState settings path for the current user.
// Outside Windows the C: drive is assumed to be mounted the WSL way.
func (l Locator) DefaultPath() string {
	name := l.userName()
	if l.GOOS == "windows" {
		return strings.Join([]string{
			`C:\Users`, name, "AppData", "Local", "Packages", terminalPackage, "LocalState", "settings.json",
		}, `\`)
	}
	return path.Join("/mnt/c/Users", name, "AppData", "Local", "Packages", terminalPackage, "LocalState", "settings.json")
}

// GuessNote explains a default path built outside Windows, where the Windows
// account name is taken from the Linux environment and may not match. It is
// empty when override is set or on Windows.
func (l Locator) GuessNote(override string) string {
	if strings.TrimSpace(override) != "" || l.GOOS == "windows" {
		return ""
	}
	return fmt.Sprintf("note: assumed Windows user %q; pass --settings or set WTLAUNCH_SETTINGS_PATH if your Windows account name differs", l.userName())
}

func (l Locator) userName() string {
	if l.Getenv != nil {
		for _, key := range []string{"USERNAME", "USER"} {
			if v := strings.TrimSpace(l.Getenv(key)); v != "" {
				return v
			}
		}
	}
	if l.CurrentUser != nil {
		if v, err := l.CurrentUser(); err == nil {
			// Windows reports DOMAIN\name.
			if idx := strings.LastIndex(v, `\`); idx >= 0 {
				v = v[idx+1:]
			}
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return fallbackUserName
}
