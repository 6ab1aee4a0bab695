package survey

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/survey/application/commands"
)

var reviewReviewer string

var reviewCmd = &cobra.Command{
	Use:   "review [plan-id]",
	Short: "Start reviewing a computed plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		actor, err := cli.Actor()
		if err != nil {
			return err
		}
		planID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id %q: %w", args[0], err)
		}

		reviewerID := actor.ID
		if reviewReviewer != "" {
			reviewerID, err = uuid.Parse(reviewReviewer)
			if err != nil {
				return fmt.Errorf("invalid reviewer id %q: %w", reviewReviewer, err)
			}
		}

		result, err := app.StartPlanReviewHandler.Handle(cmd.Context(), commands.StartReviewCommand{
			PlanID:     planID,
			ReviewerID: reviewerID,
			Actor:      actor,
		})
		if err != nil {
			return fmt.Errorf("failed to start review: %w", err)
		}

		if result.AlreadyStarted {
			fmt.Printf("Review already in progress: %s\n", planID)
			return nil
		}
		fmt.Printf("Review started: %s\n", planID)
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewReviewer, "reviewer", "", "reviewer id (defaults to the acting officer)")
}
