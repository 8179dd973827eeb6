package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrea/wtlaunch/internal/config"
)

func newPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings.json location in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts, true)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.pipeline.SettingsPath())
			fmt.Fprintf(cmd.OutOrStdout(), "preferences: %s\n", s.cfg.Path)
			if note := config.NewLocator().GuessNote(s.cfg.Preferences.SettingsPath); note != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), note)
			}
			return nil
		},
	}
}
