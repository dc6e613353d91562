package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"punchclock/config"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file with defaults",
	Long: `Write a commented configuration template to the config path.

Fails if a config file already exists at the target path.`,
	Example: `
  # Create $HOME/.punchclock.yaml with defaults
  punchclock config create

  # Create at an explicit location
  punchclock config create --configFile ./team.punchclock.yaml
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o644); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
		fmt.Printf("Created config file: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}

// resolveConfigPath picks the target config file: the --configFile
// override, the file viper discovered, or $HOME/.punchclock.yaml.
func resolveConfigPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".punchclock.yaml"), nil
}
