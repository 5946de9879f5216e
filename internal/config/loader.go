package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	defaultConfigPath = "./config.yaml"
	defaultDotEnvPath = ".env"
)

// Load builds the configuration from, in decreasing priority: process
// environment, a dotenv file, a YAML file, and env-default tags.
//
// The dotenv file is DOTENV_PATH (fallback ".env") and never overrides
// variables already set. The YAML file is CONFIG_PATH (fallback
// "./config.yaml"); only an explicitly named file is required to exist.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := readSources(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func loadDotEnv() error {
	path := os.Getenv("DOTENV_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvPath
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: dotenv %s: %w", path, err)
}

func readSources(cfg *Config) error {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
