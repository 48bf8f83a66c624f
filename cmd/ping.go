package cmd

import (
	"github.com/spf13/cobra"
)

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Exit with status 0 if the grid hosts at least one region",
	Run:   cmdHandler.Ping,
}

func init() {
	RootCmd.AddCommand(pingCmd)
}
