package coinmarketcap

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// IHttpStatusHandler is an interface for handling HTTP request statuses
//
//go:generate mockgen -destination=mocks/http_status_handler.go . IHttpStatusHandler
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnLatency handles the duration of a request that reached the server
	OnLatency(duration time.Duration)
}

// ClientOptions configures the HTTP client
type ClientOptions struct {
	LogPrefix          string
	ConnectionTimeout  time.Duration // Timeout for establishing connection
	RequestTimeout     time.Duration // Total request timeout including reading response
	RateLimitPerMinute int           // 0 disables pacing
	Burst              int
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		LogPrefix:          "CoinMarketCap",
		ConnectionTimeout:  10 * time.Second,
		RequestTimeout:     10 * time.Second,
		RateLimitPerMinute: 30,
		Burst:              1,
	}
}

// HTTPClient wraps an HTTP Client with rate limiting. Requests are never retried: a failed
// batch aborts the run.
type HTTPClient struct {
	Client        *http.Client
	Opts          ClientOptions
	StatusHandler IHttpStatusHandler
	Limiter       *rate.Limiter
}

// NewHTTPClient creates a new HTTP Client
func NewHTTPClient(opts ClientOptions, handler IHttpStatusHandler) *HTTPClient {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &HTTPClient{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
		Limiter:       newLimiter(opts.RateLimitPerMinute, opts.Burst),
	}
}

func newLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// ExecuteRequest waits on the rate limiter, executes the request and reads the whole body
// whatever the HTTP status
func (c *HTTPClient) ExecuteRequest(req *http.Request) (int, []byte, time.Duration, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(req.Context()); err != nil {
			c.onRequest("error")
			return 0, nil, 0, fmt.Errorf("rate limiter wait failed: %w", err)
		}
	}

	requestStart := time.Now()
	resp, err := c.Client.Do(req)
	requestDuration := time.Since(requestStart)
	if err != nil {
		c.onRequest("error")
		return 0, nil, requestDuration, fmt.Errorf("request failed after %.2fs: %w", requestDuration.Seconds(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	requestDuration = time.Since(requestStart)
	if c.StatusHandler != nil {
		c.StatusHandler.OnLatency(requestDuration)
	}
	if err != nil {
		c.onRequest("error")
		return resp.StatusCode, nil, requestDuration, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("%s: Request returned status %d after %.2fs",
			c.Opts.LogPrefix, resp.StatusCode, requestDuration.Seconds())
	}

	return resp.StatusCode, body, requestDuration, nil
}

func (c *HTTPClient) onRequest(status string) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status)
	}
}
