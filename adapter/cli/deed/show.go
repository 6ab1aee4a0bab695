package deed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [deed-id|deed-number]",
	Short: "Show a deed's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		q := queries.GetDeedQuery{}
		if id, err := uuid.Parse(args[0]); err == nil {
			q.DeedID = id
		} else {
			q.DeedNumber = args[0]
		}

		view, err := app.GetDeedHandler.Handle(cmd.Context(), q)
		if err != nil {
			return fmt.Errorf("failed to load deed: %w", err)
		}
		return cli.PrintJSON(view)
	},
}
