// internal/config/config.go
//
// Launcher preferences. They live in a small YAML file under the user's
// config directory and can be overridden from the environment and from
// command-line flags (in that order).

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/wtlaunch/internal/profiles"
)

const (
	// AppDir is the directory name used under the user's config and cache dirs.
	AppDir = "wtlaunch"

	defaultTerminal = "wt.exe"
)

const defaultPreferencesYAML = `# wtlaunch preferences

# Path to the Windows Terminal settings.json. Leave empty to use the default
# LocalState location for the current user.
settingsPath: ""

# alphabetical | settings
sortOrder: alphabetical

# Open profiles in the "_quake" dropdown window.
quakeMode: false

# Executable used to open profiles.
terminal: wt.exe

# Skip profiles marked "hidden": true in settings.json.
hideHidden: false
`

// Preferences models config.yaml.
type Preferences struct {
	SettingsPath string `yaml:"settingsPath"`
	SortOrder    string `yaml:"sortOrder"`
	QuakeMode    bool   `yaml:"quakeMode"`
	Terminal     string `yaml:"terminal"`
	HideHidden   bool   `yaml:"hideHidden"`
}

// Config holds the runtime configuration for wtlaunch.
type Config struct {
	// Path is the preferences file that was (or would have been) read.
	Path string

	Preferences Preferences
}

// DefaultPath returns the preferences file location for the current user.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate user config dir: %w", err)
	}
	return filepath.Join(dir, AppDir, "config.yaml"), nil
}

// Load reads preferences from path, writing a commented default file first
// if none exists. Environment overrides are applied after the file.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	if err := ensurePreferences(path); err != nil {
		return nil, fmt.Errorf("config: ensure %s: %w", path, err)
	}
	cfg := &Config{Path: path, Preferences: defaultPreferences()}
	if err := cfg.loadPreferences(); err != nil {
		return nil, err
	}
	cfg.Preferences.applyEnvOverrides()
	cfg.Preferences.normalize()
	if err := cfg.Preferences.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Defaults returns a Config that uses built-in preferences only.
func Defaults() *Config {
	prefs := defaultPreferences()
	prefs.applyEnvOverrides()
	prefs.normalize()
	return &Config{Preferences: prefs}
}

// Apply overrides preferences with explicitly supplied values and validates
// the result. Empty strings and nil pointers leave the current value alone.
func (c *Config) Apply(settingsPath, sortOrder, terminal string, quake *bool) error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	if v := strings.TrimSpace(settingsPath); v != "" {
		c.Preferences.SettingsPath = v
	}
	if v := strings.TrimSpace(sortOrder); v != "" {
		c.Preferences.SortOrder = v
	}
	if v := strings.TrimSpace(terminal); v != "" {
		c.Preferences.Terminal = v
	}
	if quake != nil {
		c.Preferences.QuakeMode = *quake
	}
	c.Preferences.normalize()
	if err := c.Preferences.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) loadPreferences() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", c.Path, err)
	}

	var parsed Preferences
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", c.Path, err)
	}
	parsed.applyDefaults()
	c.Preferences = parsed
	return nil
}

func defaultPreferences() Preferences {
	return Preferences{
		SortOrder: string(profiles.OrderAlphabetical),
		Terminal:  defaultTerminal,
	}
}

func (p *Preferences) applyDefaults() {
	if strings.TrimSpace(p.SortOrder) == "" {
		p.SortOrder = string(profiles.OrderAlphabetical)
	}
	if strings.TrimSpace(p.Terminal) == "" {
		p.Terminal = defaultTerminal
	}
}

func (p *Preferences) applyEnvOverrides() {
	if p == nil {
		return
	}
	if value := strings.TrimSpace(os.Getenv("WTLAUNCH_SETTINGS_PATH")); value != "" {
		p.SettingsPath = value
	}
	if value := strings.TrimSpace(os.Getenv("WTLAUNCH_SORT_ORDER")); value != "" {
		p.SortOrder = value
	}
	if value := strings.TrimSpace(os.Getenv("WTLAUNCH_TERMINAL")); value != "" {
		p.Terminal = value
	}
	if value := strings.TrimSpace(os.Getenv("WTLAUNCH_QUAKE_MODE")); value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			p.QuakeMode = enabled
		}
	}
	if value := strings.TrimSpace(os.Getenv("WTLAUNCH_HIDE_HIDDEN")); value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			p.HideHidden = enabled
		}
	}
}

func (p *Preferences) normalize() {
	p.SettingsPath = strings.TrimSpace(p.SettingsPath)
	p.SortOrder = strings.ToLower(strings.TrimSpace(p.SortOrder))
	p.Terminal = strings.TrimSpace(p.Terminal)
	p.applyDefaults()
}

// Order returns the validated sort order.
func (p Preferences) Order() profiles.Order {
	return profiles.Order(p.SortOrder)
}

func (p Preferences) validate() error {
	if _, err := profiles.ParseOrder(p.SortOrder); err != nil {
		return fmt.Errorf("sortOrder: %w", err)
	}
	if p.Terminal == "" {
		return fmt.Errorf("terminal is required")
	}
	return nil
}

func ensurePreferences(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultPreferencesYAML), 0o644)
}
