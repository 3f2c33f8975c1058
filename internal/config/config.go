// Package config handles application configuration loading and management
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the entire configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	NATS    NATSConfig    `mapstructure:"nats"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Site    SiteConfig    `mapstructure:"site"`
	Users   []UserConfig  `mapstructure:"users"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           int    `mapstructure:"port"`
	Host           string `mapstructure:"host"`
	BaseURL        string `mapstructure:"base_url"`
	ReadTimeout    int    `mapstructure:"read_timeout"`     // seconds
	WriteTimeout   int    `mapstructure:"write_timeout"`    // seconds
	IdleTimeout    int    `mapstructure:"idle_timeout"`     // seconds
	RateLimitRPS   int    `mapstructure:"rate_limit_rps"`   // requests per second
	RateLimitBurst int    `mapstructure:"rate_limit_burst"` // burst size
	MaxBodySize    int64  `mapstructure:"max_body_size"`    // bytes
	EnableDocs     bool   `mapstructure:"enable_docs"`      // enable /docs endpoint
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NATSConfig holds NATS-related configuration. An empty URL disables event publishing.
type NATSConfig struct {
	URL string `mapstructure:"url"`
}

// CatalogConfig points at an optional question template file
type CatalogConfig struct {
	TemplatePath string `mapstructure:"template_path"`
}

// SiteConfig holds the firm details shown on public pages
type SiteConfig struct {
	FirmName     string `mapstructure:"firm_name"`
	ContactEmail string `mapstructure:"contact_email"`
	Phone        string `mapstructure:"phone"`
}

// UserConfig overrides one entry of the mock user directory
type UserConfig struct {
	ID    int    `mapstructure:"id"`
	Email string `mapstructure:"email"`
	Name  string `mapstructure:"name"`
	Role  string `mapstructure:"role"`
}

// Addr returns the host:port the server listens on
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads the configuration from config.toml and environment variables.
// A missing config file is not an error; defaults and environment apply.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.portal")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return decode(v)
}

// LoadFile reads the configuration from an explicit file path
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides, e.g. PORTAL_SERVER_PORT
	v.SetEnvPrefix("PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.read_timeout", 10)      // 10 seconds
	v.SetDefault("server.write_timeout", 30)     // 30 seconds
	v.SetDefault("server.idle_timeout", 120)     // 120 seconds
	v.SetDefault("server.rate_limit_rps", 100)   // 100 requests per second
	v.SetDefault("server.rate_limit_burst", 200) // burst of 200
	v.SetDefault("server.max_body_size", 1048576)
	v.SetDefault("server.enable_docs", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("nats.url", "")
	v.SetDefault("catalog.template_path", "")
	v.SetDefault("site.firm_name", "Bufete Migratorio")
	v.SetDefault("site.contact_email", "contacto@example.com")
	v.SetDefault("site.phone", "+1 (555) 010-2030")

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that have no safe fallback
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RateLimitRPS < 1 || c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("server.rate_limit_rps and server.rate_limit_burst must be positive")
	}
	if c.Server.MaxBodySize <= 0 {
		return fmt.Errorf("server.max_body_size must be positive")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format %q is not one of json, text", c.Logging.Format)
	}
	return nil
}
