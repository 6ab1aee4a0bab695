package dispute

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/disputes/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [dispute-id]",
	Short: "Show a dispute's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		disputeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid dispute id %q: %w", args[0], err)
		}

		view, err := app.GetDisputeHandler.Handle(cmd.Context(), queries.GetDisputeQuery{
			DisputeID: disputeID,
		})
		if err != nil {
			return fmt.Errorf("failed to load dispute: %w", err)
		}
		return cli.PrintJSON(view)
	},
}
