// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the calibration CLI. It reads a
// calibration document and prints the sum of its line values.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/calibration/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd computes the calibration value of the input file.
var rootCmd = &cobra.Command{
	Use:   "calibration <input>",
	Short: "Sum the calibration values of a text document",
	Long: `calibration reads a text file and, for every non-empty line, combines the
first and last digit on that line into a two-digit number. The sum of those
numbers is printed to standard output.

In words mode (the default) the spelled-out digits "one" through "nine" count
as digits alongside 1-9. In digits mode only the characters 0-9 count.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runCalibration,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./calibration.yaml or ~/.config/calibration/calibration.yaml)")

	rootCmd.Flags().String("mode", string(types.ModeWords), "digit recognition: words or digits")
	rootCmd.Flags().String("report", "", "write a per-line breakdown to this file (.yaml, .yml, or .json)")
	rootCmd.Flags().Bool("json", false, "print the summary as JSON instead of the bare sum")
	rootCmd.Flags().Bool("verbose", false, "print each line's value to stderr")

	viper.SetDefault("mode", string(types.ModeWords))
	_ = viper.BindPFlag("mode", rootCmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("report", rootCmd.Flags().Lookup("report"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("calibration")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "calibration"))
		}
	}

	viper.SetEnvPrefix("CALIBRATION")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
