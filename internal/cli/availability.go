package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAvailabilityCmd(e *env) *cobra.Command {
	var date, clock string
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Ask the booking API which tables are taken",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := e.api(e.client.APIURL).CheckAvailability(cmd.Context(), date, clock)
			if !res.Ok() {
				return fmt.Errorf("availability unavailable: %w", res.Err)
			}
			booked := "none"
			if len(res.BookedTables()) > 0 {
				booked = strings.Join(res.BookedTables(), ", ")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s booked: %s\n", date, clock, booked)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
	cmd.Flags().StringVar(&clock, "time", "", "start time as HH:MM")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}
