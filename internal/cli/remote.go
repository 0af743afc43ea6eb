package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/output"
)

// newRemoteCmd creates the remote command
func newRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remote",
		Short: "List configured remotes with their URLs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := newSplog()
			defer splog.Close()

			remotes, err := newClient().ListRemotes(cmd.Context())
			if err != nil {
				return err
			}

			for _, remote := range remotes {
				splog.Info("%s\t%s (fetch)", output.Cyan(remote.Name), remote.FetchURL)
				splog.Info("%s\t%s (push)", output.Cyan(remote.Name), remote.PushURL)
			}
			return nil
		},
	}
}

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var initialBranch string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new repository",
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := newSplog()
			defer splog.Close()

			if err := newClient().Init(cmd.Context(), initialBranch); err != nil {
				return err
			}
			splog.Info("Initialized empty repository")
			return nil
		},
	}

	cmd.Flags().StringVarP(&initialBranch, "initial-branch", "b", "", "name of the initial branch")

	return cmd
}
