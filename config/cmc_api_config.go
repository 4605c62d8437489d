package config

import (
	"fmt"
	"time"
)

const (
	// DefaultCMCQuotesURL is the CoinMarketCap v2 latest quotes endpoint
	DefaultCMCQuotesURL = "https://pro-api.coinmarketcap.com/v2/cryptocurrency/quotes/latest"

	// DefaultRequestTimeout bounds a single quotes request
	DefaultRequestTimeout = 10 * time.Second

	// Basic plan allows 30 requests per minute
	defaultRateLimitPerMinute = 30
)

// CMCAPIConfig configures access to the CoinMarketCap quotes API
type CMCAPIConfig struct {
	// URL of the quotes endpoint. Should not be changed unless CoinMarketCap moves it.
	URL string `yaml:"url"`

	// Token is the personal API key sent in the X-CMC_PRO_API_KEY header.
	// Can be overridden with the CMC_API_TOKEN environment variable.
	Token string `yaml:"token"`

	// RequestTimeout bounds each request, connection and body read included
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// RateLimit paces consecutive batch requests
	RateLimit RateLimit `yaml:"rate_limit"`
}

// RateLimit represents a simple rpm + burst pair
type RateLimit struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	Burst              int `yaml:"burst"`
}

// Validate validates the API section
func (c *CMCAPIConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("cmc_api url is empty")
	}
	if c.Token == "" {
		return fmt.Errorf("cmc_api token is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("cmc_api request_timeout must be greater than 0, got %v", c.RequestTimeout)
	}
	if c.RateLimit.RateLimitPerMinute < 0 {
		return fmt.Errorf("cmc_api rate_limit_per_minute cannot be negative, got %d", c.RateLimit.RateLimitPerMinute)
	}
	if c.RateLimit.Burst < 0 {
		return fmt.Errorf("cmc_api rate_limit burst cannot be negative, got %d", c.RateLimit.Burst)
	}
	return nil
}

// GetBurst returns the configured burst, defaulting to 1
func (r RateLimit) GetBurst() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return 1
}
