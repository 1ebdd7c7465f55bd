package config

import (
	"time"

	"github.com/s0up4200/minifluxer/miniflux"
)

// Config represents the complete configuration structure
type Config struct {
	Miniflux MinifluxConfig `mapstructure:"miniflux"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// MinifluxConfig holds Miniflux API connection details.
// A token takes precedence over username/password.
type MinifluxConfig struct {
	URL      string        `mapstructure:"url"`
	Token    string        `mapstructure:"token"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// ClientConfig converts the connection settings for the API client
func (c *Config) ClientConfig() miniflux.ClientConfig {
	return miniflux.ClientConfig{
		Endpoint: c.Miniflux.URL,
		Token:    c.Miniflux.Token,
		Username: c.Miniflux.Username,
		Password: c.Miniflux.Password,
	}
}
