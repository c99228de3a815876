// Package config loads configuration for the advent command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// @Author KHighness
// @Update 2026-10-19

// Sentinel validation errors.
var (
	ErrInvalidLogFormat = errors.New("log format must be json or console")
	ErrInvalidTopK      = errors.New("top k must not be negative")
	ErrInvalidSketch    = errors.New("heavy keeper width and depth must be positive")
	ErrInvalidDecay     = errors.New("heavy keeper decay must be in (0, 1)")
)

// Default configuration values.
const (
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultTopK        = 3
	defaultHeavyK      = 10
	defaultHeavyWidth  = 1 << 12
	defaultHeavyDepth  = 4
	defaultHeavyDecay  = 0.925
	defaultHeavyMinCnt = 0
)

// Config holds all configuration for the advent command.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Top   TopConfig   `mapstructure:"top"`
	Heavy HeavyConfig `mapstructure:"heavy"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TopConfig holds defaults of the top command.
type TopConfig struct {
	K int `mapstructure:"k"`
}

// HeavyConfig sizes the HeavyKeeper sketch of the heavy command.
type HeavyConfig struct {
	K        uint32  `mapstructure:"k"`
	Width    uint32  `mapstructure:"width"`
	Depth    uint32  `mapstructure:"depth"`
	Decay    float64 `mapstructure:"decay"`
	MinCount uint32  `mapstructure:"min_count"`
}

// Load reads configuration from configPath (optional), ./advent.yaml or
// $HOME/advent.yaml, and ADVENT_* environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("advent")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("ADVENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.format", defaultLogFormat)

	v.SetDefault("top.k", defaultTopK)

	v.SetDefault("heavy.k", defaultHeavyK)
	v.SetDefault("heavy.width", defaultHeavyWidth)
	v.SetDefault("heavy.depth", defaultHeavyDepth)
	v.SetDefault("heavy.decay", defaultHeavyDecay)
	v.SetDefault("heavy.min_count", defaultHeavyMinCnt)
}

// Validate checks the configuration for values the commands cannot use.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	if c.Top.K < 0 {
		return ErrInvalidTopK
	}
	if c.Heavy.Width == 0 || c.Heavy.Depth == 0 {
		return ErrInvalidSketch
	}
	if c.Heavy.Decay <= 0 || c.Heavy.Decay >= 1 {
		return ErrInvalidDecay
	}
	return nil
}
