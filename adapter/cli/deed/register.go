package deed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/commands"
)

var registerTitleNumber string

var registerCmd = &cobra.Command{
	Use:   "register [deed-id]",
	Short: "Register an approved deed and open its title",
	Long: `Register an approved deed. Registration opens a pending title under
the given title number; the title then goes through its own review before
the registry issues a registration number.

Examples:
  landadmin deed register 5d1a... --title-number TN-2026-0099`,
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
		deedID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid deed id %q: %w", args[0], err)
		}

		result, err := app.RegisterDeedHandler.Handle(cmd.Context(), commands.RegisterDeedCommand{
			DeedID:      deedID,
			TitleNumber: registerTitleNumber,
			Actor:       actor,
		})
		if err != nil {
			return fmt.Errorf("failed to register deed: %w", err)
		}

		fmt.Printf("Deed registered: %s\n", deedID)
		fmt.Printf("  title opened: %s (%s)\n", result.TitleID, registerTitleNumber)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerTitleNumber, "title-number", "", "title number to open")
	_ = registerCmd.MarkFlagRequired("title-number")
}
