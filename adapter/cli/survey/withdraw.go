package survey

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/survey/application/commands"
)

var withdrawReason string

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [plan-id]",
	Short: "Withdraw a plan from the workflow",
	Args:  cobra.ExactArgs(1),
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

		if err := app.WithdrawPlanHandler.Handle(cmd.Context(), commands.WithdrawPlanCommand{
			PlanID: planID,
			Reason: withdrawReason,
			Actor:  actor,
		}); err != nil {
			return fmt.Errorf("failed to withdraw plan: %w", err)
		}

		fmt.Printf("Plan withdrawn: %s\n", planID)
		return nil
	},
}

func init() {
	withdrawCmd.Flags().StringVar(&withdrawReason, "reason", "", "reason for withdrawal")
	_ = withdrawCmd.MarkFlagRequired("reason")
}
