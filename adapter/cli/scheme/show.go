package scheme

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/planning/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [scheme-id|scheme-number]",
	Short: "Show a scheme's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		q := queries.GetSchemeQuery{}
		if id, err := uuid.Parse(args[0]); err == nil {
			q.SchemeID = id
		} else {
			q.SchemeNumber = args[0]
		}

		view, err := app.GetSchemeHandler.Handle(cmd.Context(), q)
		if err != nil {
			return fmt.Errorf("failed to load scheme: %w", err)
		}
		return cli.PrintJSON(view)
	},
}
