// Package config loads runtime settings from an optional JSON file and CVG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultPath is where the config file is looked up when none is given.
const DefaultPath = "config/config.json"

type Config struct {
	ServerAddr      string        `mapstructure:"server_addr"`
	GenerationDelay time.Duration `mapstructure:"generation_delay"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	Log             LogConfig     `mapstructure:"log"`
	CORS            CORSConfig    `mapstructure:"cors"`
	Metrics         MetricsConfig `mapstructure:"metrics"`
	Tracing         TracingConfig `mapstructure:"tracing"`
}

type LogConfig struct {
	// Mode is "development" or "production".
	Mode string `mapstructure:"mode"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// Load reads path (JSON) over the defaults, then applies CVG_* env overrides,
// e.g. CVG_SERVER_ADDR or CVG_METRICS_ENABLED. A missing file is only an error when required is set.
func Load(path string, required bool) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			v.SetConfigFile(path)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		case !errors.Is(statErr, os.ErrNotExist) || required:
			return Config{}, fmt.Errorf("read config %s: %w", path, statErr)
		}
	}

	v.SetEnvPrefix("CVG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.GenerationDelay < 0 {
		return errors.New("generation_delay must not be negative")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session_ttl must be positive")
	}
	// a session that expires while busy drops its batch
	if c.SessionTTL <= c.GenerationDelay {
		return fmt.Errorf("session_ttl (%s) must be longer than generation_delay (%s)", c.SessionTTL, c.GenerationDelay)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("generation_delay", "2s")
	v.SetDefault("session_ttl", "30m")
	v.SetDefault("log.mode", "development")
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "content-variation-generator")
}
