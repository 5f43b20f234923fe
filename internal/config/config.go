package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	ChromePath      string        `env:"CHROME_PATH"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE" envDefault:"EN"`
	DefaultStyle    string        `env:"DEFAULT_STYLE" envDefault:"4"`
	ExportTimeout   time.Duration `env:"EXPORT_TIMEOUT" envDefault:"60s"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	SessionIdleTTL  time.Duration `env:"SESSION_IDLE_TTL" envDefault:"24h"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config: PORT must not be empty")
	}
	if strings.TrimSpace(c.DefaultStyle) == "" {
		return fmt.Errorf("config: DEFAULT_STYLE must not be empty")
	}
	if c.ExportTimeout < 0 {
		return fmt.Errorf("config: EXPORT_TIMEOUT must not be negative, got %s", c.ExportTimeout)
	}
	if c.SessionIdleTTL < 0 {
		return fmt.Errorf("config: SESSION_IDLE_TTL must not be negative, got %s", c.SessionIdleTTL)
	}
	return nil
}
