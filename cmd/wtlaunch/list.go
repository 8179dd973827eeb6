package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Print the profiles in display order",
		Example: "  wtlaunch list\n  wtlaunch list --sort settings --json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts, true)
			if err != nil {
				return err
			}
			out := s.pipeline.Load()
			if out.Err != nil {
				return out.Err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out.Profiles)
			}
			if len(out.Profiles) == 0 {
				fmt.Fprintln(w, "No profiles found.")
				return nil
			}
			tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "NAME\tID\tCOMMANDLINE")
			for _, p := range out.Profiles {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.ID(), p.Commandline)
			}
			if err := tw.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print profiles as JSON")
	return cmd
}
