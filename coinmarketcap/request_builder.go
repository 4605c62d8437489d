package coinmarketcap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	// APIKeyHeader carries the personal API key. CoinMarketCap documents it with this exact case.
	APIKeyHeader = "X-CMC_PRO_API_KEY"

	defaultUserAgent = "crypto-sheet-updater"
)

// QuotesRequestBuilder implements the Builder pattern for CoinMarketCap quotes requests
type QuotesRequestBuilder struct {
	apiURL     string
	httpMethod string
	params     url.Values
	apiKey     string
	userAgent  string
	headers    map[string]string
}

// NewQuotesRequestBuilder creates a new request builder for the quotes endpoint at apiURL
func NewQuotesRequestBuilder(apiURL string) *QuotesRequestBuilder {
	rb := &QuotesRequestBuilder{
		apiURL:     apiURL,
		httpMethod: http.MethodGet,
		params:     url.Values{},
		headers:    make(map[string]string),
		userAgent:  defaultUserAgent,
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *QuotesRequestBuilder) With(key, value string) *QuotesRequestBuilder {
	rb.params.Set(key, value)
	return rb
}

// WithSymbols sets the comma separated symbol batch
func (rb *QuotesRequestBuilder) WithSymbols(batch string) *QuotesRequestBuilder {
	return rb.With("symbol", batch)
}

// WithAPIKey sets the API key sent in the X-CMC_PRO_API_KEY header
func (rb *QuotesRequestBuilder) WithAPIKey(apiKey string) *QuotesRequestBuilder {
	rb.apiKey = apiKey
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *QuotesRequestBuilder) WithHeader(name, value string) *QuotesRequestBuilder {
	rb.headers[name] = value
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *QuotesRequestBuilder) WithUserAgent(userAgent string) *QuotesRequestBuilder {
	rb.userAgent = userAgent
	return rb
}

// BuildURL builds the complete URL for the request. Query parameters already present in the
// configured URL are kept.
func (rb *QuotesRequestBuilder) BuildURL() (string, error) {
	u, err := url.Parse(rb.apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid url '%s': %w", rb.apiURL, err)
	}

	query := u.Query()
	for key, values := range rb.params {
		for _, value := range values {
			query.Set(key, value)
		}
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// Build creates an http.Request object bound to ctx
func (rb *QuotesRequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	finalURL, err := rb.BuildURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, rb.httpMethod, finalURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)

	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	if rb.apiKey != "" {
		// Assigned directly so the header keeps its documented case on the wire
		req.Header[APIKeyHeader] = []string{rb.apiKey}
	}

	return req, nil
}
