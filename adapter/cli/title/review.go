package title

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/commands"
)

var reviewReason string

var reviewCmd = &cobra.Command{
	Use:   "review [title-id] [start_review|approve|reject]",
	Short: "Progress a pending title through review",
	Long: `Progress a title through its review: open the review, then approve
or reject it. Rejection requires a reason.

Examples:
  landadmin title review 2e8f... start_review
  landadmin title review 2e8f... approve
  landadmin title review 2e8f... reject --reason "deed holder mismatch"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		actor, err := cli.Actor()
		if err != nil {
			return err
		}
		titleID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid title id %q: %w", args[0], err)
		}

		if err := app.ReviewTitleHandler.Handle(cmd.Context(), commands.ReviewTitleCommand{
			TitleID:  titleID,
			Decision: args[1],
			Reason:   reviewReason,
			Actor:    actor,
		}); err != nil {
			return fmt.Errorf("failed to progress title review: %w", err)
		}

		fmt.Printf("Title review progressed: %s %s\n", titleID, args[1])
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewReason, "reason", "", "rejection reason")
}
