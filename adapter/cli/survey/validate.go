package survey

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/survey/application/queries"
	"github.com/sbhunu/landadmin/internal/survey/domain/geometry"
)

var validateBoundaries string

var validateCmd = &cobra.Command{
	Use:   "validate [plan-id]",
	Short: "Validate section boundary topology",
	Long: `Check section boundaries for closure, self-intersection and overlap.
With --boundaries the given rings are checked instead of the plan's stored
ones, which lets a surveyor test a correction before submitting it.

Examples:
  landadmin survey validate 9b2e...
  landadmin survey validate 9b2e... --boundaries @rings.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		planID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id %q: %w", args[0], err)
		}

		var boundaries []geometry.Boundary
		if validateBoundaries != "" {
			if err := cli.ReadJSONArg(validateBoundaries, &boundaries); err != nil {
				return err
			}
		}

		report, err := app.ValidateTopology.Handle(cmd.Context(), queries.ValidateTopologyQuery{
			PlanID:     planID,
			Boundaries: boundaries,
		})
		if err != nil {
			return fmt.Errorf("failed to validate topology: %w", err)
		}
		return cli.PrintJSON(report)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateBoundaries, "boundaries", "", "boundary rings to check (JSON or @file)")
}
