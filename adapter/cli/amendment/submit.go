package amendment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/registry/application/commands"
)

var (
	submitKind     string
	submitReason   string
	submitSections string
)

var submitCmd = &cobra.Command{
	Use:   "submit [scheme-id]",
	Short: "Submit an amendment against a scheme",
	Long: `Submit an amendment. The kind is one of section_split,
section_extension or boundary_correction; --sections carries the sections
the amendment would introduce or replace.

Examples:
  landadmin amendment submit 7f0c... --kind section_split \
    --reason "subdivide unit 3" --sections @sections.json`,
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
		schemeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid scheme id %q: %w", args[0], err)
		}

		var sections []commands.SectionInput
		if submitSections != "" {
			if err := cli.ReadJSONArg(submitSections, &sections); err != nil {
				return err
			}
		}

		result, err := app.SubmitAmendmentHandler.Handle(cmd.Context(), commands.SubmitAmendmentCommand{
			SchemeID:    schemeID,
			Kind:        submitKind,
			Reason:      submitReason,
			NewSections: sections,
			Actor:       actor,
		})
		if err != nil {
			return fmt.Errorf("failed to submit amendment: %w", err)
		}

		fmt.Printf("Amendment submitted: %s\n", result.AmendmentID)
		fmt.Printf("  kind: %s\n", submitKind)
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitKind, "kind", "", "amendment kind (section_split, section_extension, boundary_correction)")
	submitCmd.Flags().StringVar(&submitReason, "reason", "", "reason for the amendment")
	submitCmd.Flags().StringVar(&submitSections, "sections", "", "proposed sections (JSON or @file)")
	_ = submitCmd.MarkFlagRequired("kind")
	_ = submitCmd.MarkFlagRequired("reason")
}
