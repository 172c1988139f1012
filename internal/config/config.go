// Package config loads command line settings from flags, PFC_ environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/discochess/pfc/internal/charset"
	"github.com/discochess/pfc/internal/container"
	"github.com/discochess/pfc/internal/logging"
)

const envVarPrefix = "PFC"

// Config contains the settings shared by every pfc command.
type Config struct {
	// Outer compression format, or "auto" to pick it from file extensions.
	Format string `mapstructure:"format"`
	// Text encoding of word lists and records.
	Encoding string `mapstructure:"encoding"`
	// Log at debug level.
	Verbose bool `mapstructure:"verbose"`
	// Log output format: console or json.
	LogFormat string `mapstructure:"log_format"`
	// Prometheus textfile written after each command. Blank disables metrics.
	MetricsFile string `mapstructure:"metrics_file"`
	// Number of whole lists kept in memory by lookup.
	CacheSize int `mapstructure:"cache_size"`
	// Print progress to stderr.
	Progress bool `mapstructure:"progress"`

	S3 struct {
		Region string `mapstructure:"region"`
		// Custom endpoint for S3-compatible services such as MinIO.
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"s3"`
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"format":       "format",
	"encoding":     "encoding",
	"verbose":      "verbose",
	"log-format":   "log_format",
	"metrics-file": "metrics_file",
	"cache-size":   "cache_size",
	"progress":     "progress",
	"s3-region":    "s3.region",
	"s3-endpoint":  "s3.endpoint",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", container.Auto)
	v.SetDefault("encoding", "utf-8")
	v.SetDefault("verbose", false)
	v.SetDefault("log_format", logging.FormatConsole)
	v.SetDefault("metrics_file", "")
	v.SetDefault("cache_size", 0)
	v.SetDefault("progress", false)
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.endpoint", "")
}

// Load reads configFile (if not blank), the environment and the flags in
// flags that have a config key. Nested keys are set in the environment
// with underscores, for example PFC_S3_REGION.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	var errs []error
	if c.Format != container.Auto {
		if _, err := container.ByName(c.Format); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := charset.Lookup(c.Encoding); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != logging.FormatConsole && c.LogFormat != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("cache size %d is negative", c.CacheSize))
	}
	return errors.Join(errs...)
}

// LogLevel returns the zap level name selected by Verbose.
func (c *Config) LogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return "info"
}
