// internal/tui/app.go
//
// The profile picker. It uses bubbletea (The Elm Architecture):
//
// 1. Model: App holds the list, the load state and the last notification
// 2. Update: key presses and finished loads/launches arrive as messages
// 3. View: renders the list, the loading spinner or the empty state
//
// Loading and launching run as tea.Cmds so the UI never blocks on disk or on
// process spawn.

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/wtlaunch/internal/launcher"
	"github.com/kingrea/wtlaunch/internal/logbook"
	"github.com/kingrea/wtlaunch/internal/profiles"
)

// loadState separates "still loading" from "loaded, nothing found".
type loadState int

const (
	stateLoading loadState = iota
	stateReady
)

type profilesLoadedMsg struct {
	seq     int
	outcome profiles.Outcome
}

type launchFinishedMsg struct {
	profile profiles.Profile
	err     error
}

type settingsRevealedMsg struct {
	path     string
	revealed bool
	err      error
}

type keyMap struct {
	Open     key.Binding
	Reload   key.Binding
	Settings key.Binding
}

var keys = keyMap{
	Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open profile")),
	Reload:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
	Settings: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "settings file")),
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithRevealer overrides how the settings file is shown.
func WithRevealer(r Revealer) AppOption {
	return func(a *App) {
		if r != nil {
			a.reveal = r
		}
	}
}

// WithLogbook attaches the logbook shown in the log panel.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = lb
	}
}

// App is the main application model.
type App struct {
	pipeline *profiles.Pipeline
	launcher *launcher.Launcher
	logbook  *logbook.Logbook
	reveal   Revealer
	notes    *logbook.Recorder

	state   loadState
	loadSeq int
	loadErr error

	list    list.Model
	spinner spinner.Model

	statusMsg   string
	statusError bool

	width  int
	height int
}

// NewApp creates the picker. The pipeline and launcher notifiers are
// extended so the footer can show the latest notification.
func NewApp(pipeline *profiles.Pipeline, l *launcher.Launcher, opts ...AppOption) *App {
	notes := &logbook.Recorder{}
	pipeline.Notifier = logbook.Tee(pipeline.Notifier, notes)
	l.Notifier = logbook.Tee(l.Notifier, notes)

	menu := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Windows Terminal Profiles"
	menu.FilterInput.Placeholder = "Search Windows Terminal profiles..."
	menu.SetShowStatusBar(true)
	menu.SetFilteringEnabled(true)
	menu.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Reload, keys.Settings}
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))

	app := &App{
		pipeline: pipeline,
		launcher: l,
		reveal:   defaultRevealer,
		notes:    notes,
		state:    stateLoading,
		list:     menu,
		spinner:  spin,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	return app
}

// Init starts the first load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.startLoad(false))
}

// startLoad bumps the load sequence so results of superseded loads are
// dropped when they arrive.
func (a *App) startLoad(force bool) tea.Cmd {
	a.loadSeq++
	a.state = stateLoading
	seq := a.loadSeq
	pipeline := a.pipeline
	return func() tea.Msg {
		var out profiles.Outcome
		if force {
			out = pipeline.Reload()
		} else {
			out = pipeline.Load()
		}
		return profilesLoadedMsg{seq: seq, outcome: out}
	}
}

func (a *App) launchCmd(p profiles.Profile) tea.Cmd {
	l := a.launcher
	return func() tea.Msg {
		return launchFinishedMsg{profile: p, err: l.Launch(context.Background(), p)}
	}
}

func (a *App) revealCmd() tea.Cmd {
	path := a.pipeline.SettingsPath()
	reveal := a.reveal
	return func() tea.Msg {
		ok, err := reveal(path)
		return settingsRevealedMsg{path: path, revealed: ok, err: err}
	}
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(max(0, msg.Width-4), max(0, msg.Height-6))
		return a, nil

	case spinner.TickMsg:
		if a.state != stateLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case profilesLoadedMsg:
		if msg.seq != a.loadSeq {
			return a, nil
		}
		return a, a.applyOutcome(msg.outcome)

	case launchFinishedMsg:
		a.showLastNote()
		if msg.err != nil && a.statusMsg == "" {
			a.setStatus(msg.err.Error(), true)
		}
		return a, nil

	case settingsRevealedMsg:
		switch {
		case msg.err != nil:
			a.logbook.Warn("Could not show settings file %s: %v", msg.path, msg.err)
			a.setStatus(fmt.Sprintf("Could not show settings file: %v", msg.err), true)
		case msg.revealed:
			a.setStatus(fmt.Sprintf("Revealed %s", msg.path), false)
		default:
			a.setStatus(fmt.Sprintf("Settings file: %s", msg.path), false)
		}
		return a, nil

	case tea.KeyMsg:
		filtering := a.list.FilterState() == list.Filtering
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if !filtering {
				return a, tea.Quit
			}
		case "ctrl+r":
			a.setStatus("Reloading profiles...", false)
			return a, tea.Batch(a.spinner.Tick, a.startLoad(true))
		case "ctrl+f":
			return a, a.revealCmd()
		case "enter":
			if !filtering {
				return a, a.openSelected()
			}
		}
	}

	if a.state != stateReady {
		return a, nil
	}
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a *App) applyOutcome(out profiles.Outcome) tea.Cmd {
	a.state = stateReady
	a.loadErr = out.Err
	items := make([]list.Item, len(out.Profiles))
	for i, p := range out.Profiles {
		items[i] = profileItem{profile: p}
	}
	cmd := a.list.SetItems(items)
	if out.Cached {
		a.setStatus(fmt.Sprintf("%d profiles (cached)", len(out.Profiles)), false)
		a.logbook.Info("Served %d profile(s) for %s from cache", len(out.Profiles), out.Path)
	} else {
		a.showLastNote()
	}
	return cmd
}

func (a *App) openSelected() tea.Cmd {
	item, ok := a.list.SelectedItem().(profileItem)
	if !ok {
		return nil
	}
	a.setStatus(fmt.Sprintf("Opening %s...", item.profile.Name), false)
	return a.launchCmd(item.profile)
}

func (a *App) showLastNote() {
	n, ok := a.notes.Last()
	if !ok {
		a.statusMsg = ""
		return
	}
	a.setStatus(n.String(), n.Style == logbook.StyleFailure)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.statusMsg = msg
	a.statusError = isErr
}

// View renders the current state to a string.
func (a *App) View() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("⬡ WTLAUNCH")

	var body string
	switch {
	case a.state == stateLoading:
		body = fmt.Sprintf("%s Loading profiles…", a.spinner.View())
	case len(a.list.Items()) == 0:
		body = a.renderEmptyState()
	default:
		body = a.list.View()
	}

	footerColor := lipgloss.Color("#888888")
	if a.statusError {
		footerColor = lipgloss.Color("#FF6B6B")
	}
	footer := lipgloss.NewStyle().
		Foreground(footerColor).
		MarginTop(1).
		Render(a.statusMsg)

	sections := []string{header, body}
	if panel := a.renderLogPanel(); panel != "" {
		sections = append(sections, panel)
	}
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderEmptyState() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("No profiles found")
	desc := "No Windows Terminal profiles were found. Check your settings file path in preferences."
	if a.loadErr != nil {
		desc = fmt.Sprintf("%s\n%v", desc, a.loadErr)
	}
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		MarginTop(1).
		Render("ctrl+r → reload    ctrl+f → settings file    q → quit")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, desc, hint))
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil || a.height < 24 {
		return ""
	}
	lines := a.logbook.Tail(4)
	if len(lines) == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
