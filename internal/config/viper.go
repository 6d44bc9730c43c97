// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Keywords struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"keywords" yaml:"keywords"`

	Extract struct {
		FallbackYear int    `mapstructure:"fallback_year" yaml:"fallback_year"`
		AmountPolicy string `mapstructure:"amount_policy" yaml:"amount_policy"`
	} `mapstructure:"extract" yaml:"extract"`

	Categorize struct {
		FuzzyThreshold float64 `mapstructure:"fuzzy_threshold" yaml:"fuzzy_threshold"`
	} `mapstructure:"categorize" yaml:"categorize"`

	Pipeline struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"pipeline" yaml:"pipeline"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	AI struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Model   string `mapstructure:"model" yaml:"model"`
		APIKey  string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bank-statement-analyzer")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("BSA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. Handle special case for API key (always from env, not prefixed)
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Keyword table defaults; empty means search the standard locations
	v.SetDefault("keywords.file", "")

	// Extraction defaults
	v.SetDefault("extract.fallback_year", 2025)
	v.SetDefault("extract.amount_policy", "last")

	// Categorization defaults
	v.SetDefault("categorize.fuzzy_threshold", 0.8)

	// Pipeline defaults
	v.SetDefault("pipeline.workers", 4)

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// AI defaults
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate fallback year
	if config.Extract.FallbackYear < 1900 || config.Extract.FallbackYear > 2100 {
		return fmt.Errorf("extract.fallback_year must be between 1900 and 2100, got: %d", config.Extract.FallbackYear)
	}

	// Validate amount policy
	if config.Extract.AmountPolicy != "last" && config.Extract.AmountPolicy != "first" {
		return fmt.Errorf("extract.amount_policy must be 'last' or 'first', got: %s", config.Extract.AmountPolicy)
	}

	// Validate fuzzy threshold
	if config.Categorize.FuzzyThreshold <= 0.0 || config.Categorize.FuzzyThreshold > 1.0 {
		return fmt.Errorf("categorize.fuzzy_threshold must be in (0.0, 1.0], got: %f", config.Categorize.FuzzyThreshold)
	}

	// Validate worker count
	if config.Pipeline.Workers < 1 || config.Pipeline.Workers > 64 {
		return fmt.Errorf("pipeline.workers must be between 1 and 64, got: %d", config.Pipeline.Workers)
	}

	// Validate AI configuration
	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from the Config
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
