package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gridadmin %s (%s, built %s)\n", c.BuildVersion, c.BuildHash, c.BuildTime)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
