package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/s0up4200/puxbay-go/puxbay"
)

// EnvPrefix prefixes every environment override, e.g. PUXBAY_API_KEY.
const EnvPrefix = "PUXBAY"

// AllPresets selects every configured preset in list --preset.
const AllPresets = "all"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"api-key":   "api.api_key",
	"base-url":  "api.base_url",
	"log-level": "logging.level",
	"output":    "output.format",
}

// Load loads the configuration from file, environment and flags, in
// increasing order of precedence. An explicit configPath must exist; when
// it is empty a missing config file is not an error. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The short names are what users export.
	_ = v.BindEnv("api.api_key", EnvPrefix+"_API_KEY")
	_ = v.BindEnv("api.base_url", EnvPrefix+"_BASE_URL")

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".puxbay"))
		}
		v.AddConfigPath("/etc/puxbay/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", puxbay.DefaultBaseURL)
	v.SetDefault("api.timeout", puxbay.DefaultTimeout)
	v.SetDefault("api.max_retries", puxbay.DefaultMaxRetries)
	v.SetDefault("api.retry_base_delay", puxbay.DefaultRetryBaseDelay)
	v.SetDefault("api.max_retry_delay", 0)
	v.SetDefault("api.rate_limit", 0)
	v.SetDefault("api.rate_burst", 1)

	v.SetDefault("evaluation.workers", 0)
	v.SetDefault("evaluation.batch_size", 100)

	v.SetDefault("output.format", "table")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	if cfg.API.APIKey == "" {
		return fmt.Errorf("api.api_key is required (set %s_API_KEY or --api-key)", EnvPrefix)
	}
	if !strings.HasPrefix(cfg.API.APIKey, puxbay.APIKeyPrefix) {
		return fmt.Errorf("api.api_key must start with %q", puxbay.APIKeyPrefix)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if cfg.API.MaxRetries < 0 {
		return fmt.Errorf("api.max_retries must not be negative")
	}
	if cfg.API.RateLimit < 0 {
		return fmt.Errorf("api.rate_limit must not be negative")
	}

	for name, expression := range cfg.Filter {
		if name == AllPresets {
			return fmt.Errorf("filter.%s: preset name is reserved", name)
		}
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter.%s: expression is empty", name)
		}
	}

	if cfg.Evaluation.Workers < 0 {
		return fmt.Errorf("evaluation.workers must not be negative")
	}
	if cfg.Evaluation.BatchSize < 1 {
		return fmt.Errorf("evaluation.batch_size must be at least 1")
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ClientOptions translates the API section into client options.
func (c *Config) ClientOptions(logger zerolog.Logger) []puxbay.Option {
	opts := []puxbay.Option{
		puxbay.WithBaseURL(c.API.BaseURL),
		puxbay.WithTimeout(c.API.Timeout),
		puxbay.WithMaxRetries(c.API.MaxRetries),
		puxbay.WithRetryBaseDelay(c.API.RetryBaseDelay),
		puxbay.WithLogger(logger),
	}
	if c.API.MaxRetryDelay > 0 {
		opts = append(opts, puxbay.WithMaxRetryDelay(c.API.MaxRetryDelay))
	}
	if c.API.RateLimit > 0 {
		opts = append(opts, puxbay.WithRateLimit(c.API.RateLimit, c.API.RateBurst))
	}
	return opts
}
