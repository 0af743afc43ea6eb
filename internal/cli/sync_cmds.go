package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/config"
	"gitkit.dev/gitkit/internal/git"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone <url> [path]",
		Short: "Clone a repository",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog()
			defer splog.Close()

			url := args[0]
			path := ""
			if len(args) == 2 {
				path = args[1]
			} else {
				// Mirror git's own default target directory
				path = strings.TrimSuffix(filepath.Base(url), ".git")
			}
			// Clone runs without a working directory, so a relative
			// target must be anchored to the directory selected by -C.
			if repoDir != "" && !filepath.IsAbs(path) {
				path = filepath.Join(repoDir, path)
			}

			if err := git.Clone(cmd.Context(), url, path); err != nil {
				return err
			}
			splog.Info("Cloned into %s", path)
			return nil
		},
	}
}

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push [remote] [branch]",
		Short: "Push commits to a remote",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog()
			defer splog.Close()

			remote, branch, err := remoteAndBranch(args)
			if err != nil {
				return err
			}

			if err := newClient().Push(cmd.Context(), remote, branch); err != nil {
				return err
			}
			splog.Info("Pushed to %s", remote)
			return nil
		},
	}
}

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull [remote] [branch]",
		Short: "Pull changes from a remote",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog()
			defer splog.Close()

			remote, branch, err := remoteAndBranch(args)
			if err != nil {
				return err
			}

			if err := newClient().Pull(cmd.Context(), remote, branch); err != nil {
				return err
			}
			splog.Info("Pulled from %s", remote)
			return nil
		},
	}
}

// remoteAndBranch resolves the remote/branch arguments, falling back to
// the configured default remote.
func remoteAndBranch(args []string) (string, string, error) {
	remote := ""
	branch := ""
	switch len(args) {
	case 2:
		branch = args[1]
		fallthrough
	case 1:
		remote = args[0]
	}
	if remote == "" {
		configured, err := config.GetDefaultRemote(repoRoot())
		if err != nil {
			return "", "", err
		}
		remote = configured
	}
	return remote, branch, nil
}
