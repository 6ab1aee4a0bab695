package objection

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
	Use:   "hearing [objection-id]",
	Short: "Schedule a hearing for an objection",
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
		objectionID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid objection id %q: %w", args[0], err)
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

		if err := app.ProgressObjectionHandler.HandleScheduleHearing(cmd.Context(), commands.ScheduleObjectionHearingCommand{
			ObjectionID: objectionID,
			Date:        date,
			Location:    hearingLocation,
			OfficerID:   officerID,
			Actor:       actor,
		}); err != nil {
			return fmt.Errorf("failed to schedule hearing: %w", err)
		}

		fmt.Printf("Hearing scheduled: %s on %s\n", objectionID, date.Format(time.RFC3339))
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
