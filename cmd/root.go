package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nsyszr/gridadmin/config"
	"github.com/nsyszr/gridadmin/pkg/cmd/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var c = new(config.Config)
var cmdHandler = cli.NewHandler(c)

var (
	Version   = "dev-master"
	BuildTime = "undefined"
	GitHash   = "undefined"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gridadmin",
	Short: "Remote administration tools for a virtual-world grid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	},
}

// Execute runs the command line and is called by main.main()
func Execute() {
	c.BuildTime = BuildTime
	c.BuildVersion = Version
	c.BuildHash = GitHash

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gridadmin.yml)")
	flags.StringP("server", "s", "", "grid server (URL)")
	flags.StringP("password", "p", "", "grid server admin password")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("nats-url", "", "publish an audit event for disruptive commands to this NATS server")
	flags.String("audit-subject", "gridadmin.audit", "base subject of audit events")

	viper.BindPFlag("server", flags.Lookup("server"))
	viper.BindPFlag("password", flags.Lookup("password"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("nats_url", flags.Lookup("nats-url"))
	viper.BindPFlag("audit_subject", flags.Lookup("audit-subject"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gridadmin") // name of config file (without extension)
		viper.AddConfigPath(absPathify("$HOME"))
	}

	viper.SetEnvPrefix("gridadmin")
	viper.AutomaticEnv() // read in environment variables that match

	// Fetch settings
	for _, key := range []string{
		"server", "password", "oar", "region", "log_level",
		"nats_url", "audit_subject", "mockgrid_listen", "mockgrid_regions",
	} {
		viper.BindEnv(key)
	}
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("audit_subject", "gridadmin.audit")
	viper.SetDefault("mockgrid_listen", ":9000")

	// A config file is optional for every tool.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Config file not loaded because \"%s\"\n", err)
		}
	}

	if err := viper.Unmarshal(c); err != nil {
		fmt.Fprintf(os.Stderr, "Could not read config because %s.\n", err)
		os.Exit(2)
	}
}

func absPathify(inPath string) string {
	if strings.HasPrefix(inPath, "$HOME") {
		inPath = userHomeDir() + inPath[5:]
	}

	if strings.HasPrefix(inPath, "$") {
		end := strings.Index(inPath, string(os.PathSeparator))
		if end < 0 {
			end = len(inPath)
		}
		inPath = os.Getenv(inPath[1:end]) + inPath[end:]
	}

	if filepath.IsAbs(inPath) {
		return filepath.Clean(inPath)
	}

	p, err := filepath.Abs(inPath)
	if err == nil {
		return filepath.Clean(p)
	}
	return ""
}

func userHomeDir() string {
	if runtime.GOOS == "windows" {
		home := os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
		if home == "" {
			home = os.Getenv("USERPROFILE")
		}
		return home
	}
	return os.Getenv("HOME")
}
