package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// FromEnv applies balance overrides from environment variables.
// Unset variables leave the base value in place.
func FromEnv(base Balance) Balance {
	cfg := base
	if v := getEnvInt("ARTIFACT_TOKEN_AWARD"); v > 0 {
		cfg.ArtifactAward = v
	}
	if v := getEnvInt("MORAL_CORRECT_AWARD"); v > 0 {
		cfg.MoralCorrectAward = v
	}
	if v := getEnvInt("FINAL_MISSION_AWARD"); v > 0 {
		cfg.FinalMissionAward = v
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

// ParseEnv fills a struct with `env:` tags from the environment.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
