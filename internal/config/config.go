// Package config loads converter settings from an optional TOML file and
// DEHCONV_* environment variables.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/fields"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DEHCONV_"

// Config holds every converter setting
type Config struct {
	Conversion ConversionConfig `toml:"conversion" envPrefix:"CONVERSION_"`
	Output     OutputConfig     `toml:"output" envPrefix:"OUTPUT_"`
	Logging    LoggingConfig    `toml:"logging" envPrefix:"LOGGING_"`
}

type ConversionConfig struct {
	// DoomVersion is used when an edit script names no version.
	DoomVersion int `toml:"doom_version" env:"DOOM_VERSION"`
}

type OutputConfig struct {
	Dir       string        `toml:"dir" env:"DIR"`
	RedisAddr string        `toml:"redis_addr" env:"REDIS_ADDR"`
	KeyPrefix string        `toml:"key_prefix" env:"KEY_PREFIX"`
	TTL       time.Duration `toml:"ttl" env:"TTL"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
}

// UseRedis reports whether runs are stored in Redis instead of a directory.
func (c *OutputConfig) UseRedis() bool {
	return c.RedisAddr != ""
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config "+path)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Conversion: ConversionConfig{
			DoomVersion: 21,
		},
		Output: OutputConfig{
			Dir:       "ddf_out",
			KeyPrefix: "dehconv:",
			TTL:       7 * 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate ensures all settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Conversion.DoomVersion < 0 || c.Conversion.DoomVersion > fields.ExtendedVersion {
		vb.Fieldf("conversion.doom_version", "must be between 0 and %d, got %d",
			fields.ExtendedVersion, c.Conversion.DoomVersion)
	}
	if !c.Output.UseRedis() {
		errors.ValidateRequired("output.dir", c.Output.Dir, vb)
	}
	if c.Output.TTL < 0 {
		vb.Field("output.ttl", "must not be negative")
	}
	errors.ValidateEnum("logging.level", strings.ToLower(c.Logging.Level),
		[]string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("logging.format", strings.ToLower(c.Logging.Format),
		[]string{"console", "json"}, vb)

	return vb.Build()
}
