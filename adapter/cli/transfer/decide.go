package transfer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/registry/application/commands"
)

var decideReason string

var decideCmd = &cobra.Command{
	Use:   "decide [transfer-id] [approve|reject]",
	Short: "Approve or reject a submitted transfer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		actor, err := cli.Actor()
		if err != nil {
			return err
		}
		transferID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid transfer id %q: %w", args[0], err)
		}

		switch args[1] {
		case "approve":
			err = app.DecideTransferHandler.HandleApprove(cmd.Context(), commands.ApproveTransferCommand{
				TransferID: transferID,
				Actor:      actor,
			})
		case "reject":
			err = app.DecideTransferHandler.HandleReject(cmd.Context(), commands.RejectTransferCommand{
				TransferID: transferID,
				Reason:     decideReason,
				Actor:      actor,
			})
		default:
			return fmt.Errorf("unknown decision %q: want approve or reject", args[1])
		}
		if err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		fmt.Printf("Transfer %sd: %s\n", args[1], transferID)
		return nil
	},
}

func init() {
	decideCmd.Flags().StringVar(&decideReason, "reason", "", "rejection reason")
}
