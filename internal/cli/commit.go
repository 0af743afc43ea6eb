package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/git"
	"gitkit.dev/gitkit/internal/output"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var (
		message  string
		author   string
		stageAll bool
	)

	cmd := &cobra.Command{
		Use:     "commit",
		Short:   "Record staged changes in a new commit",
		Aliases: []string{"ci"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := newSplog()
			defer splog.Close()

			if message == "" {
				return fmt.Errorf("a commit message is required (-m)")
			}

			client := newClient()

			if stageAll {
				if err := client.StageFiles(cmd.Context()); err != nil {
					return err
				}
			}

			hash, err := client.Commit(cmd.Context(), message, git.CommitOptions{Author: author})
			if err != nil {
				return err
			}

			splog.Info("Committed %s", output.Green(hash))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().StringVar(&author, "author", "", "override the commit author (\"Name <email>\")")
	cmd.Flags().BoolVarP(&stageAll, "all", "a", false, "stage all changes before committing")

	return cmd
}
