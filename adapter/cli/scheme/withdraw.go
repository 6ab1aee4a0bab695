package scheme

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/planning/application/commands"
)

var withdrawReason string

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [scheme-id]",
	Short: "Withdraw a scheme from the workflow",
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
		schemeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid scheme id %q: %w", args[0], err)
		}

		if err := app.WithdrawSchemeHandler.Handle(cmd.Context(), commands.WithdrawSchemeCommand{
			SchemeID: schemeID,
			Reason:   withdrawReason,
			Actor:    actor,
		}); err != nil {
			return fmt.Errorf("failed to withdraw scheme: %w", err)
		}

		fmt.Printf("Scheme withdrawn: %s\n", schemeID)
		return nil
	},
}

func init() {
	withdrawCmd.Flags().StringVar(&withdrawReason, "reason", "", "reason for withdrawal")
	_ = withdrawCmd.MarkFlagRequired("reason")
}
