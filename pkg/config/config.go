package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log    LogConfig
	Export ExportConfig
	Demo   DemoConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportConfig controls where admin exports are written.
type ExportConfig struct {
	Dir string
}

// DemoConfig tunes the seeded demo run.
type DemoConfig struct {
	Seed bool
}

// Load reads configuration from .env (when present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("EXPORT_DIR", "./exports")
	v.SetDefault("DEMO_SEED", true)

	cfg := &Config{
		Env: v.GetString("ENV"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Export: ExportConfig{
			Dir: v.GetString("EXPORT_DIR"),
		},
		Demo: DemoConfig{
			Seed: v.GetBool("DEMO_SEED"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants that would otherwise surface late.
func (c *Config) Validate() error {
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return errors.New("ENV must be development or production")
	}
	if c.Export.Dir == "" {
		return errors.New("EXPORT_DIR must not be empty")
	}
	return nil
}
