package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newSlotsCmd(e *env) *cobra.Command {
	var (
		date   string
		remote bool
	)
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the bookable start times of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			var slots []string
			if remote {
				resp, err := e.api(e.client.APIURL).Slots(cmd.Context(), date)
				if err != nil {
					return err
				}
				slots = resp.Slots
			} else {
				day, err := time.ParseInLocation("2006-01-02", date, e.restaurant.Location())
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
				slots = e.restaurant.Slots(day)
			}
			if len(slots) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: closed\n", date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", date, strings.Join(slots, " "))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
	cmd.Flags().BoolVar(&remote, "remote", false, "ask the booking API instead of computing locally")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
