package objection

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/disputes/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [objection-id]",
	Short: "Show an objection's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		objectionID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid objection id %q: %w", args[0], err)
		}

		view, err := app.GetObjectionHandler.Handle(cmd.Context(), queries.GetObjectionQuery{
			ObjectionID: objectionID,
		})
		if err != nil {
			return fmt.Errorf("failed to load objection: %w", err)
		}
		return cli.PrintJSON(view)
	},
}
