package scheme

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/planning/application/commands"
)

var (
	windowStart string
	windowEnd   string
	windowDays  int
)

var windowCmd = &cobra.Command{
	Use:   "window [scheme-id]",
	Short: "Open the objection window on an approved scheme",
	Long: `Open the statutory objection window. With no flags the window runs
from now for the configured default number of days; --start and --end
(RFC 3339 dates) set explicit bounds, and --days overrides the duration.

Examples:
  landadmin scheme window 7f0c...
  landadmin scheme window 7f0c... --days 45
  landadmin scheme window 7f0c... --start 2026-04-01T00:00:00Z --end 2026-05-01T00:00:00Z`,
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

		open := commands.OpenObjectionWindowCommand{
			SchemeID:    schemeID,
			DefaultDays: windowDays,
			Actor:       actor,
		}
		if windowStart != "" {
			open.WindowStart, err = time.Parse(time.RFC3339, windowStart)
			if err != nil {
				return fmt.Errorf("invalid --start %q: %w", windowStart, err)
			}
		}
		if windowEnd != "" {
			open.WindowEnd, err = time.Parse(time.RFC3339, windowEnd)
			if err != nil {
				return fmt.Errorf("invalid --end %q: %w", windowEnd, err)
			}
		}

		if err := app.OpenObjectionWindowHandler.Handle(cmd.Context(), open); err != nil {
			return fmt.Errorf("failed to open objection window: %w", err)
		}

		fmt.Printf("Objection window opened: %s\n", schemeID)
		return nil
	},
}

func init() {
	windowCmd.Flags().StringVar(&windowStart, "start", "", "window start (RFC 3339)")
	windowCmd.Flags().StringVar(&windowEnd, "end", "", "window end (RFC 3339)")
	windowCmd.Flags().IntVar(&windowDays, "days", 0, "window length in days (0 uses the configured default)")
}
