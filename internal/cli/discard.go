package cli

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// newDiscardCmd creates the discard command
func newDiscardCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "discard [paths...]",
		Short: "Discard working tree changes to tracked files",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog()
			defer splog.Close()

			if !force {
				confirmed := false
				prompt := &survey.Confirm{
					Message: "Discard local changes? This cannot be undone.",
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					splog.Info("Aborted")
					return nil
				}
			}

			if err := newClient().DiscardChanges(cmd.Context(), args...); err != nil {
				return err
			}
			splog.Info("Changes discarded")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
