package scheme

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/planning/application/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check [scheme-id] [item-code]",
	Short: "Complete a review checklist item",
	Args:  cobra.ExactArgs(2),
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

		if err := app.CompleteChecklistItemHandler.Handle(cmd.Context(), commands.CompleteChecklistItemCommand{
			SchemeID: schemeID,
			ItemCode: args[1],
			Actor:    actor,
		}); err != nil {
			return fmt.Errorf("failed to complete checklist item: %w", err)
		}

		fmt.Printf("Checklist item completed: %s\n", args[1])
		return nil
	},
}
