package title

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/commands"
)

var registerNumber string

var registerCmd = &cobra.Command{
	Use:   "register [title-id]",
	Short: "Register an approved title",
	Long: `Register an approved title under a registration number. This is the
final step: the registered title is the authoritative record of ownership.

Examples:
  landadmin title register 2e8f... --registration-number REG-2026-1180`,
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
		titleID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid title id %q: %w", args[0], err)
		}

		result, err := app.RegisterTitleHandler.Handle(cmd.Context(), commands.RegisterTitleCommand{
			TitleID:            titleID,
			RegistrationNumber: registerNumber,
			Actor:              actor,
		})
		if err != nil {
			return fmt.Errorf("failed to register title: %w", err)
		}

		fmt.Printf("Title registered: %s\n", titleID)
		fmt.Printf("  registration number: %s\n", result.RegistrationNumber)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerNumber, "registration-number", "", "registration number to issue")
	_ = registerCmd.MarkFlagRequired("registration-number")
}
