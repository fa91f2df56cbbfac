// Package cli implements bookctl, the command-line booking client.
package cli

import (
	"github.com/spf13/cobra"

	"metzenhof/internal/client"
	"metzenhof/internal/config"
	"metzenhof/internal/restaurant"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

type env struct {
	restaurant restaurant.Config
	client     config.ClientConfig
	api        func(baseURL string) *client.Client
}

func NewRoot() *cobra.Command {
	e := &env{
		restaurant: restaurant.Metzenhof(),
		client:     config.ClientFromEnv(),
		api:        func(baseURL string) *client.Client { return client.New(baseURL, nil) },
	}
	return newRoot(e)
}

func newRoot(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bookctl",
		Short:         "Book a table at Wirtshaus Metzenhof",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&e.client.APIURL, "api", e.client.APIURL, "booking API base URL")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSlotsCmd(e))
	cmd.AddCommand(newTablesCmd(e))
	cmd.AddCommand(newAvailabilityCmd(e))
	cmd.AddCommand(newBookCmd(e))
	cmd.AddCommand(newHashPasswordCmd())
	return cmd
}
