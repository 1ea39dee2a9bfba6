package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/alem-hub/gradebook/pkg/logger"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Report width bounds.
const (
	MinReportWidth = 20
	MaxReportWidth = 200
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Observability
	Observability ObservabilityConfig

	// Report rendering
	Report ReportConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `env:"GRADEBOOK_APP_NAME" envDefault:"gradebook"`
	Environment Environment `env:"GRADEBOOK_ENV" envDefault:"development"`
	Version     string      `env:"GRADEBOOK_VERSION" envDefault:"0.1.0"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `env:"GRADEBOOK_LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	LogFormat string `env:"GRADEBOOK_LOG_FORMAT" envDefault:"text"` // json, text
}

// ReportConfig controls how summary reports are printed.
type ReportConfig struct {
	Width     int    `env:"GRADEBOOK_REPORT_WIDTH" envDefault:"50"`
	Separator string `env:"GRADEBOOK_REPORT_SEPARATOR" envDefault:"="`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch c.App.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Sprintf("GRADEBOOK_ENV must be one of development, staging, production (got %q)", c.App.Environment))
	}

	switch strings.ToLower(c.Observability.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, "GRADEBOOK_LOG_FORMAT must be json or text")
	}

	if c.Report.Width < MinReportWidth || c.Report.Width > MaxReportWidth {
		errs = append(errs, fmt.Sprintf("GRADEBOOK_REPORT_WIDTH must be %d-%d", MinReportWidth, MaxReportWidth))
	}

	if c.Report.Separator == "" {
		errs = append(errs, "GRADEBOOK_REPORT_SEPARATOR cannot be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// LoggerOptions builds logger options from the observability settings.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.DefaultOptions()
	opts.Level = logger.ParseLevel(c.Observability.LogLevel)
	opts.Format = logger.ParseFormat(c.Observability.LogFormat)
	opts.AddCaller = c.IsDevelopment() && opts.Level == logger.LevelDebug
	return opts
}
