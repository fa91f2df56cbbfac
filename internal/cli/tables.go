package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"metzenhof/internal/restaurant"
)

func newTablesCmd(e *env) *cobra.Command {
	var (
		guests int
		booked []string
	)
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Show the table catalog and the table a party would get",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range e.restaurant.Tables {
				fmt.Fprintf(out, "%-4s %2d seats\n", t.ID, t.Capacity)
			}
			if guests <= 0 {
				return nil
			}
			id, ok := restaurant.SelectTable(guests, booked, e.restaurant.Tables)
			if !ok {
				fmt.Fprintf(out, "no table for %d guests\n", guests)
				return nil
			}
			fmt.Fprintf(out, "%d guests -> %s\n", guests, id)
			return nil
		},
	}
	cmd.Flags().IntVar(&guests, "guests", 0, "party size to place")
	cmd.Flags().StringSliceVar(&booked, "booked", nil, "tables already taken, e.g. R1,R3")
	return cmd
}
