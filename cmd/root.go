/*
Copyright © 2025 generalelectrix
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dmxctl",
	Short: "Control DMX512 output through USB widgets and Art-Net nodes",
	Long: `dmxctl drives DMX512 lighting universes from the command line.

It speaks the Enttec USB DMX Pro protocol over USB serial widgets, streams
to Art-Net nodes over the network, and provides an interactive console for
testing fixtures and output chains.

Use "dmxctl list" to discover available output ports.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dmxctl.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".dmxctl" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dmxctl")
	}

	viper.SetEnvPrefix("DMXCTL")
	viper.AutomaticEnv() // read in environment variables that match

	// Widget parameter defaults, overridable from the config file.
	viper.SetDefault("break-time", 9)
	viper.SetDefault("mark-after-break", 1)
	viper.SetDefault("refresh-rate", 40)
	viper.SetDefault("universe", 512)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
