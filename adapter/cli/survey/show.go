package survey

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/survey/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [plan-id|plan-number]",
	Short: "Show a plan's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		q := queries.GetPlanQuery{}
		if id, err := uuid.Parse(args[0]); err == nil {
			q.PlanID = id
		} else {
			q.PlanNumber = args[0]
		}

		view, err := app.GetPlanHandler.Handle(cmd.Context(), q)
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}
		return cli.PrintJSON(view)
	},
}
