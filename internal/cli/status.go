package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show the working tree status",
		Aliases: []string{"st"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := newSplog()
			defer splog.Close()

			status, err := newClient().Status(cmd.Context())
			if err != nil {
				return err
			}

			if !status.IsRepo {
				splog.Warn("%s", status.Message)
				return nil
			}

			branch := status.Branch
			if branch == "" {
				branch = "(detached)"
			}
			splog.Info("On branch %s", output.Cyan(branch))
			splog.Info("Last commit: %s", output.Gray(status.LastCommit))

			if len(status.Staged) == 0 && len(status.Unstaged) == 0 && len(status.Untracked) == 0 {
				splog.Info("Working tree clean")
				return nil
			}

			splog.Newline()
			for _, path := range status.Staged {
				splog.Info("  staged:    %s", output.Green(path))
			}
			for _, path := range status.Unstaged {
				splog.Info("  modified:  %s", output.Yellow(path))
			}
			for _, path := range status.Untracked {
				splog.Info("  untracked: %s", output.Red(path))
			}
			return nil
		},
	}
}
