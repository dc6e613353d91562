package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"punchclock/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Print the validated configuration after defaults and file values are merged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		source := viper.ConfigFileUsed()
		if source == "" {
			source = "(defaults, no config file found)"
		}
		fmt.Printf("Config source: %s\n\n", source)
		fmt.Printf("storage.path:      %s\n", cfg.Storage.Path)
		fmt.Printf("storage.batch:     %s\n", batchName(cfg))
		fmt.Printf("excluded_projects: %s\n", strings.Join(cfg.ExcludedProjects, ", "))
		fmt.Printf("serve.port:        %d\n", cfg.Serve.Port)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
