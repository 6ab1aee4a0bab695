package title

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [title-id|title-number]",
	Short: "Show a title's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		q := queries.GetTitleQuery{}
		if id, err := uuid.Parse(args[0]); err == nil {
			q.TitleID = id
		} else {
			q.TitleNumber = args[0]
		}

		view, err := app.GetTitleHandler.Handle(cmd.Context(), q)
		if err != nil {
			return fmt.Errorf("failed to load title: %w", err)
		}
		return cli.PrintJSON(view)
	},
}
