package amendment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/registry/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [amendment-id]",
	Short: "Show an amendment's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		amendmentID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid amendment id %q: %w", args[0], err)
		}

		view, err := app.GetAmendmentHandler.Handle(cmd.Context(), queries.GetAmendmentQuery{
			AmendmentID: amendmentID,
		})
		if err != nil {
			return fmt.Errorf("failed to load amendment: %w", err)
		}
		return cli.PrintJSON(view)
	},
}
