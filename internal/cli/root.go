// Package cli defines the gitkit command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/git"
	"gitkit.dev/gitkit/internal/output"
)

var (
	repoDir   string
	debugMode bool
	quietMode bool
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gitkit",
		Short:         "Gitkit wraps the git executable with structured, scriptable operations",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Clone and init work without a repository, but every
			// command needs the git binary itself.
			if !git.IsAvailable() {
				return fmt.Errorf("git executable not found on PATH")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&repoDir, "dir", "C", "", "run as if started in this directory")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "suppress console output")

	// Add subcommands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newUnstageCmd())
	rootCmd.AddCommand(newDiscardCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newRemoteCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

// newClient returns a git client bound to the directory selected by -C,
// or the current directory.
func newClient() *git.Client {
	return git.NewClient(repoDir)
}

// newSplog creates the console/file logger honoring --debug and --quiet.
func newSplog() *output.Splog {
	splog, err := output.NewSplogWithLogFile(output.DefaultLogFilePath(), debugMode)
	if err != nil {
		splog = output.NewSplog(debugMode)
	}
	splog.SetQuiet(quietMode)
	return splog
}

// repoRoot is the directory used for per-repo config lookup.
func repoRoot() string {
	if repoDir != "" {
		return repoDir
	}
	return "."
}
