package transfer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/registry/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [transfer-id]",
	Short: "Show a transfer's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		transferID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid transfer id %q: %w", args[0], err)
		}

		view, err := app.GetTransferHandler.Handle(cmd.Context(), queries.GetTransferQuery{
			TransferID: transferID,
		})
		if err != nil {
			return fmt.Errorf("failed to load transfer: %w", err)
		}
		return cli.PrintJSON(view)
	},
}
