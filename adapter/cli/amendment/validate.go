package amendment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/registry/application/queries"
)

var validateSections string

var validateCmd = &cobra.Command{
	Use:   "validate [scheme-id]",
	Short: "Validate a proposed amendment without submitting it",
	Long: `Check proposed sections against the scheme's sealed plan: boundary
topology and the quota total the amendment would produce. Nothing is
persisted; applicants run this before submitting.

Examples:
  landadmin amendment validate 7f0c... --sections @sections.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		schemeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid scheme id %q: %w", args[0], err)
		}

		var sections []queries.ProposedSection
		if err := cli.ReadJSONArg(validateSections, &sections); err != nil {
			return err
		}

		report, err := app.ValidateAmendment.Handle(cmd.Context(), queries.ValidateAmendmentQuery{
			SchemeID:    schemeID,
			NewSections: sections,
		})
		if err != nil {
			return fmt.Errorf("failed to validate amendment: %w", err)
		}
		return cli.PrintJSON(report)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSections, "sections", "", "proposed sections (JSON or @file)")
	_ = validateCmd.MarkFlagRequired("sections")
}
