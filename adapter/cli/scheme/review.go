package scheme

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/planning/application/commands"
)

var reviewReviewer string

var reviewCmd = &cobra.Command{
	Use:   "review [scheme-id]",
	Short: "Start reviewing a submitted scheme",
	Long: `Start reviewing a submitted scheme and record the assigned reviewer.
Calling review again on the same scheme is a no-op.

Examples:
  landadmin scheme review 7f0c... --reviewer 3a91...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		actor, err := cli.Actor()
		if err != nil {
			return err
		}
		schemeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid scheme id %q: %w", args[0], err)
		}

		reviewerID := actor.ID
		if reviewReviewer != "" {
			reviewerID, err = uuid.Parse(reviewReviewer)
			if err != nil {
				return fmt.Errorf("invalid reviewer id %q: %w", reviewReviewer, err)
			}
		}

		result, err := app.StartSchemeReviewHandler.Handle(cmd.Context(), commands.StartReviewCommand{
			SchemeID:   schemeID,
			ReviewerID: reviewerID,
			Actor:      actor,
		})
		if err != nil {
			return fmt.Errorf("failed to start review: %w", err)
		}

		if result.AlreadyStarted {
			fmt.Printf("Review already in progress: %s\n", schemeID)
			return nil
		}
		fmt.Printf("Review started: %s\n", schemeID)
		fmt.Printf("  reviewer: %s\n", reviewerID)
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewReviewer, "reviewer", "", "reviewer id (defaults to the acting officer)")
}
