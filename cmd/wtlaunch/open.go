package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/wtlaunch/internal/profiles"
)

func newOpenCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "open <guid-or-name>",
		Short: "Open a profile without the picker",
		Long: `Open a profile by GUID or name. Exact GUID and name matches win;
otherwise the best fuzzy name match is used.`,
		Example: "  wtlaunch open Ubuntu\n  wtlaunch open \"{61c54bbd-c2c6-5271-96e7-009a87ff44bf}\" --quake",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, true)
			if err != nil {
				return err
			}
			out := s.pipeline.Load()
			if out.Err != nil {
				return out.Err
			}
			p, ok := profiles.Find(out.Profiles, args[0])
			if !ok {
				return fmt.Errorf("no profile matches %q", args[0])
			}
			if dryRun {
				c := s.launcher.Command(p)
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(quoteArgs(c.Args), " "))
				return nil
			}
			if err := s.launcher.Launch(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", p.Name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the command instead of running it")
	return cmd
}

// quoteArgs quotes arguments containing spaces for display only.
func quoteArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"") {
			out[i] = fmt.Sprintf("%q", a)
			continue
		}
		out[i] = a
	}
	return out
}
