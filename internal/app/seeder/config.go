package seeder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config describes the demo account and how samples are written.
type Config struct {
	Email     string `yaml:"email"      env:"SEED_EMAIL"      env-default:"username@example.com"`
	Password  string `yaml:"password"   env:"SEED_PASSWORD"   env-default:"00000000"`
	Name      string `yaml:"name"       env:"SEED_NAME"       env-default:"John Doe"`
	BatchSize int    `yaml:"batch_size" env:"SEED_BATCH_SIZE" env-default:"50"`
	DryRun    bool   `yaml:"dry_run"    env:"SEED_DRY_RUN"`
}

// LoadConfig reads SEED_* variables, layered over the YAML file at path
// when one is given.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	read := func() error { return cleanenv.ReadEnv(&cfg) }
	if path != "" {
		read = func() error { return cleanenv.ReadConfig(path, &cfg) }
	}
	if err := read(); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	return &cfg, nil
}

// Validate reports missing credentials or a negative batch size.
func (c Config) Validate() error {
	var errs []error
	if !strings.Contains(c.Email, "@") {
		errs = append(errs, fmt.Errorf("email %q is not an address", c.Email))
	}
	if c.Password == "" {
		errs = append(errs, errors.New("password is required"))
	}
	if c.BatchSize < 0 {
		errs = append(errs, errors.New("batch_size must not be negative"))
	}
	return errors.Join(errs...)
}
