package survey

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/survey/application/commands"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

var (
	draftScheme   string
	draftSections string
)

var draftCmd = &cobra.Command{
	Use:   "draft [plan-number]",
	Short: "Draft a sectional plan against an approved scheme",
	Long: `Draft a sectional plan. Sections are given as JSON: an array of
{"number", "floor_area", "boundary"} objects where boundary is a closed
ring of {"x","y"} points.

Examples:
  landadmin survey draft SP-2026-0042 --scheme 7f0c... --sections @sections.json
  landadmin survey draft SP-2026-0043 --scheme 7f0c... \
    --sections '[{"number":1,"floor_area":"120"},{"number":2,"floor_area":"80"}]'`,
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
		schemeID, err := uuid.Parse(draftScheme)
		if err != nil {
			return fmt.Errorf("invalid scheme id %q: %w", draftScheme, err)
		}

		var sections []plan.Section
		if err := cli.ReadJSONArg(draftSections, &sections); err != nil {
			return err
		}

		result, err := app.DraftPlanHandler.Handle(cmd.Context(), commands.DraftPlanCommand{
			PlanNumber: args[0],
			SchemeID:   schemeID,
			Sections:   sections,
			Actor:      actor,
		})
		if err != nil {
			return fmt.Errorf("failed to draft plan: %w", err)
		}

		fmt.Printf("Plan drafted: %s\n", result.PlanID)
		fmt.Printf("  number: %s, sections: %d\n", args[0], len(sections))
		return nil
	},
}

func init() {
	draftCmd.Flags().StringVar(&draftScheme, "scheme", "", "approved scheme id")
	draftCmd.Flags().StringVar(&draftSections, "sections", "", "section list (JSON or @file)")
	_ = draftCmd.MarkFlagRequired("scheme")
	_ = draftCmd.MarkFlagRequired("sections")
}
