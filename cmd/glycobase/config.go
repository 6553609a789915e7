package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// defaultConfigPath is looked up in the working directory when --config is
// not given; a missing file is not an error.
const defaultConfigPath = ".glycobase.yaml"

// config holds CLI defaults a user can pin in a config file. Flags given on
// the command line always win.
type config struct {
	DB     string `yaml:"db"`
	Format string `yaml:"format"`
}

// loadConfig reads the config file at path, or the default path when path is
// empty. Returns nil when no config file exists and none was requested.
func loadConfig(path string) (*config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfig fills unset flags from the config file.
func applyConfig(cmd *cobra.Command) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}
	if cfg.DB != "" && !cmd.Flags().Changed("db") {
		flagDB = cfg.DB
	}
	if cfg.Format != "" && !cmd.Flags().Changed("format") {
		flagFormat = cfg.Format
	}
	return nil
}
