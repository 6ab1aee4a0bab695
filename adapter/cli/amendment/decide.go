package amendment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/registry/application/commands"
)

var decideReason string

var decideCmd = &cobra.Command{
	Use:   "decide [amendment-id] [approve|reject]",
	Short: "Approve or reject a submitted amendment",
	Long: `Approve or reject a submitted amendment. Approval clears it for
processing; rejection closes it and requires a reason.

Examples:
  landadmin amendment decide 8a3b... approve
  landadmin amendment decide 8a3b... reject --reason "overlaps section 5"`,
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
		amendmentID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid amendment id %q: %w", args[0], err)
		}

		switch args[1] {
		case "approve":
			err = app.DecideAmendmentHandler.HandleApprove(cmd.Context(), commands.ApproveAmendmentCommand{
				AmendmentID: amendmentID,
				Actor:       actor,
			})
		case "reject":
			err = app.DecideAmendmentHandler.HandleReject(cmd.Context(), commands.RejectAmendmentCommand{
				AmendmentID: amendmentID,
				Reason:      decideReason,
				Actor:       actor,
			})
		default:
			return fmt.Errorf("unknown decision %q: want approve or reject", args[1])
		}
		if err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		fmt.Printf("Amendment %sd: %s\n", args[1], amendmentID)
		return nil
	},
}

func init() {
	decideCmd.Flags().StringVar(&decideReason, "reason", "", "rejection reason")
}
