package deed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/commands"
	"github.com/sbhunu/landadmin/internal/review"
)

var (
	decideNotes   string
	decideDefects string
)

var decideCmd = &cobra.Command{
	Use:   "decide [deed-id] [approve|reject|request_revision]",
	Short: "Record the examination decision on a deed",
	Long: `Record the examiner's decision. A revision request carries the
defects found, given as JSON {"category","description"} pairs; each defect
routes a correction notice to the responsible party after the decision
commits. Failed notices are reported but never fail the decision.

Examples:
  landadmin deed decide 5d1a... approve
  landadmin deed decide 5d1a... request_revision --notes "resurvey section 3" \
    --defects '[{"category":"survey","description":"area exceeds sealed section"}]'`,
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
		deedID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid deed id %q: %w", args[0], err)
		}

		var defects []review.Defect
		if decideDefects != "" {
			if err := cli.ReadJSONArg(decideDefects, &defects); err != nil {
				return err
			}
		}

		result, err := app.DecideDeedHandler.Handle(cmd.Context(), commands.SubmitDecisionCommand{
			DeedID:   deedID,
			Decision: args[1],
			Notes:    decideNotes,
			Defects:  defects,
			Actor:    actor,
		})
		if err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		fmt.Printf("Decision recorded: %s %s\n", deedID, args[1])
		for _, n := range result.Notifications {
			if n.Delivered {
				fmt.Printf("  notice sent: %s\n", n.Party)
			} else {
				fmt.Printf("  notice NOT delivered: %s (%s)\n", n.Party, n.Error)
			}
		}
		return nil
	},
}

func init() {
	decideCmd.Flags().StringVar(&decideNotes, "notes", "", "examiner notes")
	decideCmd.Flags().StringVar(&decideDefects, "defects", "", "defect list (JSON or @file)")
}
