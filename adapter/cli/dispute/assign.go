package dispute

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/disputes/application/commands"
)

var (
	assignTo        string
	assignAuthority string
)

var assignCmd = &cobra.Command{
	Use:   "assign [dispute-id]",
	Short: "Assign a dispute to a resolving officer",
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
		disputeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid dispute id %q: %w", args[0], err)
		}

		assigneeID := actor.ID
		if assignTo != "" {
			assigneeID, err = uuid.Parse(assignTo)
			if err != nil {
				return fmt.Errorf("invalid assignee id %q: %w", assignTo, err)
			}
		}

		if err := app.ProgressDisputeHandler.HandleAssign(cmd.Context(), commands.AssignDisputeCommand{
			DisputeID:  disputeID,
			AssigneeID: assigneeID,
			Authority:  assignAuthority,
			Actor:      actor,
		}); err != nil {
			return fmt.Errorf("failed to assign dispute: %w", err)
		}

		fmt.Printf("Dispute assigned: %s -> %s\n", disputeID, assigneeID)
		return nil
	},
}

func init() {
	assignCmd.Flags().StringVar(&assignTo, "to", "", "assignee officer id (defaults to the acting officer)")
	assignCmd.Flags().StringVar(&assignAuthority, "authority", "", "resolving authority")
}
