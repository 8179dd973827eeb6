package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/wtlaunch/internal/config"
	"github.com/kingrea/wtlaunch/internal/launcher"
	"github.com/kingrea/wtlaunch/internal/logbook"
	"github.com/kingrea/wtlaunch/internal/profiles"
	"github.com/kingrea/wtlaunch/internal/tui"
)

type rootOptions struct {
	configFile string
	settings   string
	sort       string
	terminal   string
	quake      bool
	verbose    bool
}

// session is everything a command needs, built once per invocation.
type session struct {
	cfg      *config.Config
	logbook  *logbook.Logbook
	pipeline *profiles.Pipeline
	launcher *launcher.Launcher
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "wtlaunch",
		Short: "Search and open Windows Terminal profiles",
		Long: `wtlaunch reads the profile list from the Windows Terminal settings.json,
shows it as a searchable list and opens the chosen profile with wt.exe.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts, false)
			if err != nil {
				return err
			}
			s.logbook.Info("Session opened · settings %s", s.pipeline.SettingsPath())
			app := tui.NewApp(s.pipeline, s.launcher, tui.WithLogbook(s.logbook))
			if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "preferences file (default is <user config dir>/wtlaunch/config.yaml)")
	flags.StringVar(&opts.settings, "settings", "", "path to Windows Terminal settings.json")
	flags.StringVar(&opts.sort, "sort", "", "profile order: alphabetical or settings")
	flags.StringVar(&opts.terminal, "terminal", "", "terminal executable (default wt.exe)")
	flags.BoolVar(&opts.quake, "quake", false, "open profiles in the quake window")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "echo notifications to stderr")

	cmd.AddCommand(
		newListCmd(opts),
		newOpenCmd(opts),
		newPathCmd(opts),
	)
	return cmd
}

// newSession loads preferences, applies flag overrides and wires the
// pipeline and launcher. Notifications always reach the logbook; echo adds
// stderr for non-interactive commands.
func newSession(cmd *cobra.Command, opts *rootOptions, echo bool) (*session, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}
	var quake *bool
	if cmd.Flags().Changed("quake") {
		quake = &opts.quake
	}
	if err := cfg.Apply(opts.settings, opts.sort, opts.terminal, quake); err != nil {
		return nil, err
	}
	lb := openLogbook(cmd.ErrOrStderr())
	var notifier logbook.Notifier = lb
	if echo && opts.verbose {
		notifier = logbook.Tee(lb, logbook.Writer(cmd.ErrOrStderr()))
	}

	pipeline := &profiles.Pipeline{
		Override: cfg.Preferences.SettingsPath,
		Resolver: config.NewLocator(),
		Order:    cfg.Preferences.Order(),
		Options:  profiles.SelectOptions{HideHidden: cfg.Preferences.HideHidden},
		Cache:    profiles.NewCache(),
		Notifier: notifier,
	}
	l := launcher.New(cfg.Preferences.Terminal, cfg.Preferences.QuakeMode, notifier)
	return &session{cfg: cfg, logbook: lb, pipeline: pipeline, launcher: l}, nil
}

// openLogbook returns nil when the log file cannot be created; a nil
// Logbook discards entries.
func openLogbook(stderr io.Writer) *logbook.Logbook {
	path, err := logbook.DefaultPath(config.AppDir)
	if err == nil {
		var lb *logbook.Logbook
		if lb, err = logbook.New(path); err == nil {
			return lb
		}
	}
	if os.Getenv("WTLAUNCH_DEBUG") != "" {
		fmt.Fprintf(stderr, "logbook disabled: %v\n", err)
	}
	return nil
}
