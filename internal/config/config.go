// Package config loads the settings of the fhirpath command.
//
// Values are taken, in order of precedence, from command line flags,
// FHIRPATH_ prefixed environment variables, an optional config file and defaults.
package config

import (
	"context"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/yeyanbo/fhirpath-go/fhirpath"
)

const (
	envPrefix           = "FHIRPATH"
	maxDecimalPrecision = 1000
)

type Config struct {
	DecimalPrecision uint32 `mapstructure:"DECIMAL_PRECISION"`
	Trace            bool   `mapstructure:"TRACE"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	CacheSize        int    `mapstructure:"CACHE_SIZE"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"precision":  "DECIMAL_PRECISION",
	"trace":      "TRACE",
	"log-level":  "LOG_LEVEL",
	"cache-size": "CACHE_SIZE",
}

// Load reads the configuration. configFile and flags are optional.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("DECIMAL_PRECISION", 34)
	v.SetDefault("TRACE", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CACHE_SIZE", 256)

	for _, key := range flagKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DecimalPrecision == 0 || c.DecimalPrecision > maxDecimalPrecision {
		return fmt.Errorf("decimal precision must be between 1 and %d, got %d", maxDecimalPrecision, c.DecimalPrecision)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// Level returns the configured log level, info if it does not parse.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// EvaluationContext prepares ctx for fhirpath.Evaluate.
// With Trace enabled, trace() output goes to logger.
func (c *Config) EvaluationContext(ctx context.Context, logger zerolog.Logger) context.Context {
	ctx = fhirpath.WithAPDContext(ctx, apd.BaseContext.WithPrecision(c.DecimalPrecision))
	if c.Trace {
		ctx = fhirpath.WithTracer(ctx, fhirpath.LogTracer{Logger: logger})
	}
	return ctx
}
