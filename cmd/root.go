/*
Copyright © 2026 punchclock authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"punchclock/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "punchclock",
	Short: "Validate raw time-log entries and sum them into per-day project/task totals.",
	Long: `
**********************************************
*               PUNCHCLOCK                   *
**********************************************

This CLI reads raw time-log rows (date, project, task, start time), validates
and normalizes them, pairs consecutive check-ins into intervals, and sums the
intervals into per-day project/task totals. Cleanly validated batches are kept
in a local SQLite store and reloaded on the next run.

Supported input formats:
- Excel: .xlsx, .xlsm, .xls
- CSV: .csv
`,
	Example: `
  # Create configuration file
  punchclock config create

  # Validate entry files without summarizing
  punchclock check -i monday.csv -i tuesday.csv

  # Summarize entry files (persists the batch when validation is clean)
  punchclock sum -i week34.csv

  # Summarize the last stored batch
  punchclock sum

  # Export summaries
  punchclock export --output ./summaries.csv

  # Start the local entry form UI
  punchclock serve
`,
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

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.punchclock.yaml, then ./.punchclock.yaml)")
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

		// Search config in home directory with name ".punchclock" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".punchclock")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: punchclock config create")
	}
}
