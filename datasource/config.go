package datasource

import (
	"context"
	"fmt"
	"time"

	"weather-display/i18n"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration
type Config struct {
	// WeatherAPI.com access
	APIKey  string        `env:"WEATHERAPI_KEY,required"`
	BaseURL string        `env:"WEATHERAPI_BASE_URL,default=https://api.weatherapi.com/v1"`
	Timeout time.Duration `env:"WEATHERAPI_TIMEOUT,default=10s"`
	Alerts  bool          `env:"WEATHERAPI_ALERTS,default=false"`

	// Free tier allows ~23 calls/minute
	RateLimitEnabled bool    `env:"RATE_LIMIT_ENABLED,default=true"`
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS,default=0.4"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST,default=3"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE,default=pt"`

	// Device location stand-ins for a process without a GPS
	LocationConsent bool   `env:"LOCATION_CONSENT,default=true"`
	DeviceCoords    string `env:"DEVICE_COORDS"` // "lat,lon"; empty means IP lookup
	IPLocatorURL    string `env:"IP_LOCATOR_URL,default=http://ip-api.com/json/"`

	Port     string `env:"PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

// LoadConfig loads configuration from the process environment
func LoadConfig(ctx context.Context) (*Config, error) {
	return LoadConfigWith(ctx, envconfig.OsLookuper())
}

// LoadConfigWith loads configuration from the given lookuper
func LoadConfigWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot express in tags
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("WEATHERAPI_KEY must not be empty")
	}
	if _, err := i18n.ParseLanguage(c.DefaultLanguage); err != nil {
		return fmt.Errorf("invalid DEFAULT_LANGUAGE: %w", err)
	}
	if c.RateLimitEnabled {
		if c.RateLimitRPS <= 0 {
			return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
		}
		if c.RateLimitBurst < 1 {
			return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("WEATHERAPI_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

// Language returns the configured default language
func (c *Config) Language() i18n.Language {
	lang, err := i18n.ParseLanguage(c.DefaultLanguage)
	if err != nil {
		return i18n.Portuguese
	}
	return lang
}
