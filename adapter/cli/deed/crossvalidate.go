package deed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/queries"
)

var crossvalidateCmd = &cobra.Command{
	Use:   "crossvalidate [deed-id]",
	Short: "Cross-check a deed against the sealed plan",
	Long: `Compare the deed's section and area against the scheme's sealed
survey plan. Examiners run this before recording a decision; the result is
cached briefly since the sealed plan cannot change underneath it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		deedID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid deed id %q: %w", args[0], err)
		}

		result, err := app.CrossValidateHandler.Handle(cmd.Context(), queries.CrossValidateQuery{
			DeedID: deedID,
		})
		if err != nil {
			return fmt.Errorf("failed to cross-validate deed: %w", err)
		}
		return cli.PrintJSON(result)
	},
}
