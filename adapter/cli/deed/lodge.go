package deed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/commands"
	"github.com/sbhunu/landadmin/internal/review"
)

var (
	lodgeScheme    string
	lodgeSection   int
	lodgeHolder    string
	lodgeArea      string
	lodgeChecklist string
)

var lodgeCmd = &cobra.Command{
	Use:   "lodge [deed-number]",
	Short: "Lodge a deed for one section",
	Long: `Lodge a title deed against one section of a sealed plan. The holder
is the party the deed will vest in; the area is cross-checked against the
sealed plan's section during examination.

Examples:
  landadmin deed lodge DT-2026-0815 --scheme 7f0c... --section 3 \
    --holder 4c7d... --area 120.5`,
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
		schemeID, err := uuid.Parse(lodgeScheme)
		if err != nil {
			return fmt.Errorf("invalid scheme id %q: %w", lodgeScheme, err)
		}
		holderID, err := uuid.Parse(lodgeHolder)
		if err != nil {
			return fmt.Errorf("invalid holder id %q: %w", lodgeHolder, err)
		}
		area, err := decimal.NewFromString(lodgeArea)
		if err != nil {
			return fmt.Errorf("invalid area %q: %w", lodgeArea, err)
		}

		var checklist []review.ChecklistItem
		if lodgeChecklist != "" {
			if err := cli.ReadJSONArg(lodgeChecklist, &checklist); err != nil {
				return err
			}
		}

		result, err := app.LodgeDeedHandler.Handle(cmd.Context(), commands.LodgeDeedCommand{
			DeedNumber:    args[0],
			SchemeID:      schemeID,
			SectionNumber: lodgeSection,
			HolderID:      holderID,
			Area:          area,
			Checklist:     checklist,
			Actor:         actor,
		})
		if err != nil {
			return fmt.Errorf("failed to lodge deed: %w", err)
		}

		fmt.Printf("Deed lodged: %s\n", result.DeedID)
		fmt.Printf("  number: %s, section: %d\n", args[0], lodgeSection)
		return nil
	},
}

func init() {
	lodgeCmd.Flags().StringVar(&lodgeScheme, "scheme", "", "scheme id")
	lodgeCmd.Flags().IntVar(&lodgeSection, "section", 0, "section number on the sealed plan")
	lodgeCmd.Flags().StringVar(&lodgeHolder, "holder", "", "holder party id")
	lodgeCmd.Flags().StringVar(&lodgeArea, "area", "", "deed area in square metres")
	lodgeCmd.Flags().StringVar(&lodgeChecklist, "checklist", "", "examination checklist (JSON or @file)")
	_ = lodgeCmd.MarkFlagRequired("scheme")
	_ = lodgeCmd.MarkFlagRequired("section")
	_ = lodgeCmd.MarkFlagRequired("holder")
	_ = lodgeCmd.MarkFlagRequired("area")
}
