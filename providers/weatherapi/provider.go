package weatherapi

import (
	"strings"
	"time"

	"weather-display/datasource"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the provider's v1 API root
const DefaultBaseURL = "https://api.weatherapi.com/v1"

// Client fetches forecasts from WeatherAPI.com
type Client struct {
	apiKey string
	alerts bool
	client *resty.Client
}

// Ensure Client implements datasource.WeatherFetcher
var _ datasource.WeatherFetcher = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
}

// WithTimeout overrides the transport timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.SetTimeout(d)
	}
}

// WithAlerts asks the provider to include government alerts
func WithAlerts(enabled bool) Option {
	return func(c *Client) {
		c.alerts = enabled
	}
}

// NewClient creates a new WeatherAPI client. The API key is injected here and
// sent with every request.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		client: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTimeout(10*time.Second).
			SetHeader("Accept", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig builds a client from the application configuration
func NewClientFromConfig(cfg *datasource.Config) *Client {
	return NewClient(cfg.APIKey,
		WithBaseURL(cfg.BaseURL),
		WithTimeout(cfg.Timeout),
		WithAlerts(cfg.Alerts),
	)
}

// Name returns the provider name
func (c *Client) Name() string {
	return "WeatherAPI"
}
