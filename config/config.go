package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MINIFLUXER_MINIFLUX_TOKEN
const EnvPrefix = "MINIFLUXER"

// Load loads the configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".minifluxer"))
		}

		// Check /etc
		v.AddConfigPath("/etc/minifluxer/")
	}

	// A missing default config file is fine, the environment may carry everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Miniflux defaults
	v.SetDefault("miniflux.url", "http://localhost:8080")
	v.SetDefault("miniflux.timeout", "30s")
	// Registered so AutomaticEnv picks them up during Unmarshal
	v.SetDefault("miniflux.token", "")
	v.SetDefault("miniflux.username", "")
	v.SetDefault("miniflux.password", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Miniflux.URL == "" {
		return fmt.Errorf("miniflux.url is required")
	}

	u, err := url.Parse(cfg.Miniflux.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("miniflux.url must be an absolute URL: %s", cfg.Miniflux.URL)
	}

	if cfg.Miniflux.Token == "" && (cfg.Miniflux.Username == "" || cfg.Miniflux.Password == "") {
		return fmt.Errorf("either miniflux.token or miniflux.username and miniflux.password must be set")
	}

	if cfg.Miniflux.Timeout < 0 {
		return fmt.Errorf("miniflux.timeout must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	return nil
}
