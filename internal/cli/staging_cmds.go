package cli

import (
	"github.com/spf13/cobra"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [paths...]",
		Short: "Stage files for commit (all changes when no paths are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog()
			defer splog.Close()

			if err := newClient().StageFiles(cmd.Context(), args...); err != nil {
				return err
			}
			splog.Debug("staged %d path(s)", len(args))
			return nil
		},
	}
}

// newUnstageCmd creates the unstage command
func newUnstageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unstage [paths...]",
		Short: "Remove files from the index (everything when no paths are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog()
			defer splog.Close()

			if err := newClient().UnstageFiles(cmd.Context(), args...); err != nil {
				return err
			}
			splog.Debug("unstaged %d path(s)", len(args))
			return nil
		},
	}
}
