package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyStoragePath      = "storage.path"
	KeyStorageBatch     = "storage.batch"
	KeyExcludedProjects = "excluded_projects"
	KeyServePort        = "serve.port"
)

type Config struct {
	Storage          StorageConfig `mapstructure:"storage" validate:"required"`
	ExcludedProjects []string      `mapstructure:"excluded_projects" validate:"dive,required"`
	Serve            ServeConfig   `mapstructure:"serve"`
}

type StorageConfig struct {
	Path  string `mapstructure:"path" validate:"required"`
	Batch string `mapstructure:"batch" validate:"required"`
}

type ServeConfig struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# punchclock configuration
storage:
  path: "./punchclock.db"
  batch: "timecard"

# Projects excluded from summaries (matched case-insensitively).
excluded_projects:
  - home
  - lunch

serve:
  port: 8080
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateExclusions(cfg.ExcludedProjects); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStoragePath, "./punchclock.db")
	v.SetDefault(KeyStorageBatch, "timecard")
	v.SetDefault(KeyExcludedProjects, []string{"home", "lunch"})
	v.SetDefault(KeyServePort, 8080)
}

func validateExclusions(projects []string) error {
	seen := make(map[string]struct{}, len(projects))
	for i, project := range projects {
		name := strings.ToLower(strings.TrimSpace(project))
		if name == "" {
			return fmt.Errorf("validation failed: excluded_projects[%d] is empty", i)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("validation failed: duplicate excluded project %q", project)
		}
		seen[name] = struct{}{}
	}
	return nil
}
