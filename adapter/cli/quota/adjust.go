package quota

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/survey/application/commands"
)

var (
	adjustSection int
	adjustQuota   string
)

var adjustCmd = &cobra.Command{
	Use:   "adjust [plan-id]",
	Short: "Manually adjust one section's quota",
	Long: `Set one section's quota directly. The difference is redistributed
across the other sections in proportion to their floor areas, keeping the
total at exactly 100.

Examples:
  landadmin quota adjust 9b2e... --section 3 --quota 12.5000`,
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
		newQuota, err := decimal.NewFromString(adjustQuota)
		if err != nil {
			return fmt.Errorf("invalid quota %q: %w", adjustQuota, err)
		}

		if err := app.AdjustQuotaHandler.Handle(cmd.Context(), commands.AdjustQuotaCommand{
			PlanID:        planID,
			SectionNumber: adjustSection,
			NewQuota:      newQuota,
			Actor:         actor,
		}); err != nil {
			return fmt.Errorf("failed to adjust quota: %w", err)
		}

		fmt.Printf("Quota adjusted: section %d -> %s\n", adjustSection, newQuota.StringFixed(4))
		return nil
	},
}

func init() {
	adjustCmd.Flags().IntVar(&adjustSection, "section", 0, "section number")
	adjustCmd.Flags().StringVar(&adjustQuota, "quota", "", "new quota percentage")
	_ = adjustCmd.MarkFlagRequired("section")
	_ = adjustCmd.MarkFlagRequired("quota")
}
