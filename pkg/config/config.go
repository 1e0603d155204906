// Package config loads runtime settings and the user-editable category
// mappings table. Both are loaded once per run and treated as read-only for
// the lifetime of a batch.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the runtime settings for a conversion run.
type Config struct {
	// OutputDir receives generated CSV files. Empty means next to the
	// input file.
	OutputDir string
	// MappingsFile is the path of the category mappings YAML file.
	MappingsFile string
	// LogLevel is the minimum level emitted by the logger.
	LogLevel string
}

// Build assembles configuration from an optional config file, the
// environment, and command-line flags, in increasing order of precedence.
// A missing default config file is not an error; an explicitly named one is.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("output", "")
	v.SetDefault("mappings", "config/category_mappings.yaml")
	v.SetDefault("log-level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("MONARCHU")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("error binding flags: %w", err)
		}
	}

	return &Config{
		OutputDir:    v.GetString("output"),
		MappingsFile: v.GetString("mappings"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}
