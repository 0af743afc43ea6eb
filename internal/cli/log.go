package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/config"
	"gitkit.dev/gitkit/internal/git"
	"gitkit.dev/gitkit/internal/output"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Show recent commits, newest first",
		Aliases: []string{"l"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := newSplog()
			defer splog.Close()

			if limit <= 0 {
				configured, err := config.GetLogLimit(repoRoot())
				if err != nil {
					return err
				}
				limit = configured
			}

			commits, err := newClient().Log(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(commits) == 0 {
				splog.Info("No commits yet")
				return nil
			}

			lines := lo.Map(commits, func(c git.Commit, _ int) string {
				return fmt.Sprintf("%s %s %s %s",
					output.Yellow(c.ShortHash),
					c.Subject,
					output.Cyan(c.AuthorName),
					output.Gray(c.Date))
			})
			splog.Page(strings.Join(lines, "\n") + "\n")
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "max-count", "n", 0, "limit the number of commits shown")

	return cmd
}
