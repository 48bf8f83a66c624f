package cmd

import (
	"github.com/nsyszr/gridadmin/pkg/cmd/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveMockGridCmd represents the serve mockgrid command
var serveMockGridCmd = &cobra.Command{
	Use:   "mockgrid",
	Short: "Serve the remote admin endpoints of an in-memory grid for rehearsals",
	Run:   server.RunServeMockGrid(c),
}

func init() {
	serveCmd.AddCommand(serveMockGridCmd)

	serveMockGridCmd.Flags().String("listen", ":9000", "listen address")
	serveMockGridCmd.Flags().StringSlice("seed-region", nil, "region to create, as name or name=avatars (repeatable)")
	viper.BindPFlag("mockgrid_listen", serveMockGridCmd.Flags().Lookup("listen"))
	viper.BindPFlag("mockgrid_regions", serveMockGridCmd.Flags().Lookup("seed-region"))
}
