package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/intervals"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".ivq"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for ivq settings.
const envPrefix = "IVQ"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Default settings.
const (
	DefaultRelation   = "overlaps"
	DefaultTraceLevel = "Error"
	DefaultChartColor = true
)

// ErrInvalidConfig is returned for settings out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all ivq settings.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Relation   string      `mapstructure:"relation"`
	TraceLevel string      `mapstructure:"tracelevel"`
	Chart      ChartConfig `mapstructure:"chart"`
}

// ChartConfig holds settings for bar charts of intervals.
type ChartConfig struct {
	LineWidth  int  `mapstructure:"line_width"` // 0 selects the terminal's width
	LabelWidth int  `mapstructure:"label_width"`
	Color      bool `mapstructure:"color"`
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if _, err := intervals.ParseRelation(c.Relation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Chart.LineWidth < 0 || c.Chart.LabelWidth < 0 {
		return fmt.Errorf("%w: negative chart width", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("relation", DefaultRelation)
	viperCfg.SetDefault("tracelevel", DefaultTraceLevel)

	viperCfg.SetDefault("chart.line_width", 0)
	viperCfg.SetDefault("chart.label_width", 0)
	viperCfg.SetDefault("chart.color", DefaultChartColor)
}
