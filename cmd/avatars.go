package cmd

import (
	"github.com/spf13/cobra"
)

// avatarsCmd represents the avatars command
var avatarsCmd = &cobra.Command{
	Use:   "avatars",
	Short: "Print the number of avatars on the grid (always exits with status 1)",
	Run:   cmdHandler.Avatars,
}

func init() {
	RootCmd.AddCommand(avatarsCmd)
}
