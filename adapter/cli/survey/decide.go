package survey

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/survey/application/commands"
)

var decideNotes string

var decideCmd = &cobra.Command{
	Use:   "decide [plan-id] [approve|reject|request_revision]",
	Short: "Record the review decision on a plan",
	Long: `Record the reviewer's decision. Approval seals the plan, which
requires its quotas to sum to exactly 100 percent at four decimal places.

Examples:
  landadmin survey decide 9b2e... approve
  landadmin survey decide 9b2e... request_revision --notes "section 3 boundary open"`,
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
		planID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id %q: %w", args[0], err)
		}

		if err := app.DecidePlanHandler.Handle(cmd.Context(), commands.SubmitDecisionCommand{
			PlanID:   planID,
			Decision: args[1],
			Notes:    decideNotes,
			Actor:    actor,
		}); err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		fmt.Printf("Decision recorded: %s %s\n", planID, args[1])
		return nil
	},
}

func init() {
	decideCmd.Flags().StringVar(&decideNotes, "notes", "", "reviewer notes")
}
