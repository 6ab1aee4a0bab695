package dispute

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/disputes/application/commands"
)

var (
	hearingDate     string
	hearingLocation string
	hearingOfficer  string
)

var hearingCmd = &cobra.Command{
	Use:   "hearing [dispute-id]",
	Short: "Schedule a hearing for an assigned dispute",
	Long: `Schedule a hearing. Without --officer the acting officer presides.

Examples:
  landadmin dispute hearing 6c2d... --date 2026-09-10T09:00:00Z \
    --location "Harare magistrates court, room 4"`,
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
		disputeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid dispute id %q: %w", args[0], err)
		}
		date, err := time.Parse(time.RFC3339, hearingDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", hearingDate, err)
		}

		var officerID uuid.UUID
		if hearingOfficer != "" {
			officerID, err = uuid.Parse(hearingOfficer)
			if err != nil {
				return fmt.Errorf("invalid officer id %q: %w", hearingOfficer, err)
			}
		}

		if err := app.ProgressDisputeHandler.HandleScheduleHearing(cmd.Context(), commands.ScheduleDisputeHearingCommand{
			DisputeID: disputeID,
			Date:      date,
			Location:  hearingLocation,
			OfficerID: officerID,
			Actor:     actor,
		}); err != nil {
			return fmt.Errorf("failed to schedule hearing: %w", err)
		}

		fmt.Printf("Hearing scheduled: %s on %s\n", disputeID, date.Format(time.RFC3339))
		return nil
	},
}

func init() {
	hearingCmd.Flags().StringVar(&hearingDate, "date", "", "hearing date (RFC 3339)")
	hearingCmd.Flags().StringVar(&hearingLocation, "location", "", "hearing location")
	hearingCmd.Flags().StringVar(&hearingOfficer, "officer", "", "presiding officer id (defaults to the acting officer)")
	_ = hearingCmd.MarkFlagRequired("date")
	_ = hearingCmd.MarkFlagRequired("location")
}
