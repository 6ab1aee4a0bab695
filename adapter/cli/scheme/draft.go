package scheme

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/planning/application/commands"
	"github.com/sbhunu/landadmin/internal/review"
)

var (
	draftName      string
	draftAuthority string
	draftChecklist string
)

var draftCmd = &cobra.Command{
	Use:   "draft [scheme-number]",
	Short: "Draft a new planning scheme",
	Long: `Draft a planning scheme under a scheme number. The optional checklist
is the set of statutory items a reviewer must complete before approval.

Examples:
  landadmin scheme draft SS-2026-0001 --name "Kopje Heights"
  landadmin scheme draft SS-2026-0002 --name "Avondale Mews" \
    --authority "City of Harare" \
    --checklist '[{"code":"ZON","description":"zoning certificate","required":true}]'`,
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

		var checklist []review.ChecklistItem
		if draftChecklist != "" {
			if err := cli.ReadJSONArg(draftChecklist, &checklist); err != nil {
				return err
			}
		}

		result, err := app.DraftSchemeHandler.Handle(cmd.Context(), commands.DraftSchemeCommand{
			SchemeNumber:   args[0],
			Name:           draftName,
			LocalAuthority: draftAuthority,
			Checklist:      checklist,
			Actor:          actor,
		})
		if err != nil {
			return fmt.Errorf("failed to draft scheme: %w", err)
		}

		fmt.Printf("Scheme drafted: %s\n", result.SchemeID)
		fmt.Printf("  number: %s\n", args[0])
		return nil
	},
}

func init() {
	draftCmd.Flags().StringVarP(&draftName, "name", "n", "", "scheme name")
	draftCmd.Flags().StringVar(&draftAuthority, "authority", "", "local planning authority")
	draftCmd.Flags().StringVar(&draftChecklist, "checklist", "", "review checklist (JSON or @file)")
	_ = draftCmd.MarkFlagRequired("name")
}
