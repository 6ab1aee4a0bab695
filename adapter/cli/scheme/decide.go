package scheme

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/planning/application/commands"
)

var decideNotes string

var decideCmd = &cobra.Command{
	Use:   "decide [scheme-id] [approve|reject|request_revision]",
	Short: "Record the review decision on a scheme",
	Long: `Record the reviewer's decision. Approval requires every required
checklist item to be completed first.

Examples:
  landadmin scheme decide 7f0c... approve
  landadmin scheme decide 7f0c... request_revision --notes "zoning certificate expired"`,
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
		schemeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid scheme id %q: %w", args[0], err)
		}

		if err := app.DecideSchemeHandler.Handle(cmd.Context(), commands.SubmitDecisionCommand{
			SchemeID: schemeID,
			Decision: args[1],
			Notes:    decideNotes,
			Actor:    actor,
		}); err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		fmt.Printf("Decision recorded: %s %s\n", schemeID, args[1])
		return nil
	},
}

func init() {
	decideCmd.Flags().StringVar(&decideNotes, "notes", "", "reviewer notes")
}
