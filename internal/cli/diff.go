package cli

import (
	"github.com/spf13/cobra"
)

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "diff [paths...]",
		Short: "Show unstaged changes (or staged with --cached)",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog()
			defer splog.Close()

			client := newClient()

			var (
				diff string
				err  error
			)
			if cached {
				diff, err = client.StagedDiff(cmd.Context(), args...)
			} else {
				diff, err = client.Diff(cmd.Context(), args...)
			}
			if err != nil {
				return err
			}

			splog.Page(diff)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "show staged changes instead")

	return cmd
}
