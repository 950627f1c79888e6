package server

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goto/approvalflow/core/connection"
	"github.com/goto/approvalflow/core/orchestrator"
	"github.com/goto/approvalflow/internal/store/postgres"
	"github.com/goto/approvalflow/jobs"
	httpClient "github.com/goto/approvalflow/pkg/http"
	"github.com/goto/approvalflow/pkg/opentelemetry"
	"github.com/goto/salt/config"
	"github.com/mcuadros/go-defaults"
)

const envPrefix = "APPROVALFLOW"

type FallbackConfig struct {
	// SeedFile replaces the embedded seed data of the local store when set.
	SeedFile string `mapstructure:"seed_file" yaml:"seed_file"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

type Config struct {
	LogLevel  string                      `mapstructure:"log_level" yaml:"log_level" default:"info" validate:"oneof=debug info warn error fatal"`
	UserID    int                         `mapstructure:"user_id" yaml:"user_id" default:"1" validate:"gt=0"`
	Remote    httpClient.HTTPClientConfig `mapstructure:"remote" yaml:"remote"`
	Realtime  connection.Config           `mapstructure:"realtime" yaml:"realtime"`
	Sync      orchestrator.Config         `mapstructure:"sync" yaml:"sync"`
	Fallback  FallbackConfig              `mapstructure:"fallback" yaml:"fallback"`
	DB        postgres.Config             `mapstructure:"db" yaml:"db"`
	Metrics   MetricsConfig               `mapstructure:"metrics" yaml:"metrics"`
	Jobs      map[jobs.Type]jobs.Job      `mapstructure:"jobs" yaml:"jobs"`
	Telemetry opentelemetry.Config        `mapstructure:"telemetry" yaml:"telemetry"`
}

func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	defaults.SetDefaults(&cfg)

	loader := config.NewLoader(
		config.WithFile(configFile),
		config.WithEnvPrefix(envPrefix),
		config.WithEnvKeyReplacer(".", "_"),
	)
	if err := loader.Load(&cfg); err != nil {
		if !errors.As(err, &config.ConfigFileNotFoundError{}) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize fills the values derived from other sections.
func (c *Config) normalize() {
	if c.Realtime.UserID == 0 {
		c.Realtime.UserID = c.UserID
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for t := range c.Jobs {
		if !isKnownJob(t) {
			return fmt.Errorf("invalid config: unknown job %q", t)
		}
	}
	return nil
}

func isKnownJob(t jobs.Type) bool {
	for _, known := range jobs.Types {
		if t == known {
			return true
		}
	}
	return false
}
