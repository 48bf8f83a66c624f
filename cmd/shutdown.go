package cmd

import (
	"github.com/spf13/cobra"
)

// shutdownCmd represents the shutdown command
var shutdownCmd = &cobra.Command{
	Use:   "shutdown",
	Short: "Warn all users, then shut the grid down",
	Run:   cmdHandler.Shutdown,
}

func init() {
	RootCmd.AddCommand(shutdownCmd)
}
