package objection

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/disputes/application/commands"
	"github.com/sbhunu/landadmin/internal/disputes/domain/objection"
)

var submitGrounds string

var submitCmd = &cobra.Command{
	Use:   "submit [scheme-id]",
	Short: "Lodge an objection against a scheme",
	Long: `Lodge an objection. The scheme's objection window must be open;
both window bounds are inclusive, so an objection lodged on the closing
day is in time.

Examples:
  landadmin objection submit 7f0c... --grounds "insufficient parking provision"`,
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

		result, err := app.SubmitObjectionHandler.Handle(cmd.Context(), commands.SubmitObjectionCommand{
			SchemeID: schemeID,
			Grounds:  submitGrounds,
			Actor:    actor,
		})
		if err != nil {
			var closed *objection.WindowClosedError
			if errors.As(err, &closed) {
				return fmt.Errorf("objection not accepted: %w", closed)
			}
			return fmt.Errorf("failed to lodge objection: %w", err)
		}

		fmt.Printf("Objection lodged: %s\n", result.ObjectionID)
		fmt.Printf("  window days remaining: %d\n", result.DaysRemaining)
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitGrounds, "grounds", "", "grounds of the objection")
	_ = submitCmd.MarkFlagRequired("grounds")
}
