package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the game configuration file.
type Config struct {
	Version string  `yaml:"version" json:"version"`
	Balance Balance `yaml:"balance" json:"balance"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Balance: Default(),
	}
}

// Load reads a YAML config file. A missing file is not an error: the
// defaults apply, so a bare checkout runs without any config on disk.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Zero awards almost always mean a partial file, not an intent to
	// strip the economy; fill them back in.
	def := Default()
	if cfg.Balance.ArtifactAward <= 0 {
		cfg.Balance.ArtifactAward = def.ArtifactAward
	}
	if cfg.Balance.MoralCorrectAward <= 0 {
		cfg.Balance.MoralCorrectAward = def.MoralCorrectAward
	}
	if cfg.Balance.FinalMissionAward <= 0 {
		cfg.Balance.FinalMissionAward = def.FinalMissionAward
	}
	return cfg, nil
}
