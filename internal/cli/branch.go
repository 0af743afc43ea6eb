package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/output"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "branch",
		Short:   "List branches",
		Aliases: []string{"br"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := newSplog()
			defer splog.Close()

			branches, err := newClient().ListBranches(cmd.Context(), all)
			if err != nil {
				return err
			}

			for _, branch := range branches {
				splog.Info("%s", output.ColorBranchName(branch.Name, branch.IsCurrent))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include remote-tracking branches")

	return cmd
}

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:     "checkout <branch>",
		Short:   "Switch branches, optionally creating the target first",
		Aliases: []string{"co"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog()
			defer splog.Close()

			client := newClient()
			name := args[0]

			if create {
				if err := client.CreateBranch(cmd.Context(), name); err != nil {
					return err
				}
				splog.Info("Created and switched to branch %s", output.Cyan(name))
				return nil
			}

			if err := client.SwitchBranch(cmd.Context(), name); err != nil {
				return err
			}
			splog.Info("Switched to branch %s", output.Cyan(name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&create, "branch", "b", false, "create the branch before switching")

	return cmd
}
