package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadOARCmd represents the load-oar command
var loadOARCmd = &cobra.Command{
	Use:   "load-oar",
	Short: "Warn the region's users, then load a saved-region archive (OAR) into it",
	Run:   cmdHandler.LoadOAR,
}

func init() {
	RootCmd.AddCommand(loadOARCmd)

	loadOARCmd.Flags().StringP("oar", "o", "", "OAR file to load")
	loadOARCmd.Flags().StringP("region", "r", "", "target region")
	viper.BindPFlag("oar", loadOARCmd.Flags().Lookup("oar"))
	viper.BindPFlag("region", loadOARCmd.Flags().Lookup("region"))
}
