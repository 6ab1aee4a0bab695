package quota

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/survey/application/commands"
	"github.com/sbhunu/landadmin/internal/survey/application/queries"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

var computeSections string

var computeCmd = &cobra.Command{
	Use:   "compute [plan-id]",
	Short: "Compute quotas from section floor areas",
	Long: `Compute each section's participation quota as its share of total
floor area, rounded to four decimal places with the residual assigned to
the largest section so the quotas sum to exactly 100.

With --sections the plan's section list is replaced before computing;
without it the stored sections are recomputed in place.

Examples:
  landadmin quota compute 9b2e...
  landadmin quota compute 9b2e... --sections @sections.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		actor, err := cli.Actor()
		if err != nil {
			return err
		}
		planID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id %q: %w", args[0], err)
		}

		var sections []plan.Section
		if computeSections != "" {
			if err := cli.ReadJSONArg(computeSections, &sections); err != nil {
				return err
			}
		}

		if err := app.ComputeQuotasHandler.Handle(cmd.Context(), commands.ComputeQuotasCommand{
			PlanID:   planID,
			Sections: sections,
			Actor:    actor,
		}); err != nil {
			return fmt.Errorf("failed to compute quotas: %w", err)
		}

		view, err := app.GetPlanHandler.Handle(cmd.Context(), queries.GetPlanQuery{PlanID: planID})
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}
		fmt.Printf("Quotas computed: %s\n", planID)
		for _, s := range view.Sections {
			fmt.Printf("  section %d: %s\n", s.Number, s.Quota.StringFixed(4))
		}
		return nil
	},
}

func init() {
	computeCmd.Flags().StringVar(&computeSections, "sections", "", "replacement section list (JSON or @file)")
}
