// Package cmd is for command line interactions with the dnamatch application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "dnamatch",
	Short: `Compare two DNA sequences.
Count exact occurrences of a pattern or measure sequence similarity`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	// settings is an optional parameter for a settings file that overrides the defaults
	RootCmd.PersistentFlags().StringP("settings", "s", "", "path to a settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log timing to stdout")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
