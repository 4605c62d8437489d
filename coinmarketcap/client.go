package coinmarketcap

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/status-im/crypto-sheet-updater/config"
	"github.com/status-im/crypto-sheet-updater/dataset"
	"github.com/status-im/crypto-sheet-updater/interfaces"
	"github.com/status-im/crypto-sheet-updater/metrics"
	"github.com/status-im/crypto-sheet-updater/rounding"
)

// ConvertCurrency is the quote currency read from every response
const ConvertCurrency = "USD"

// Client implements interfaces.QuoteFetcher for the CoinMarketCap v2 quotes endpoint
type Client struct {
	config        *config.CMCAPIConfig
	httpClient    *HTTPClient
	metricsWriter *metrics.MetricsWriter
}

// NewClient creates a new CoinMarketCap API client
func NewClient(cfg *config.CMCAPIConfig, metricsWriter *metrics.MetricsWriter) *Client {
	opts := DefaultClientOptions()
	opts.RequestTimeout = cfg.RequestTimeout
	opts.ConnectionTimeout = cfg.RequestTimeout
	opts.RateLimitPerMinute = cfg.RateLimit.RateLimitPerMinute
	opts.Burst = cfg.RateLimit.GetBurst()

	var handler IHttpStatusHandler
	if metricsWriter != nil {
		handler = metricsWriter
	}

	return &Client{
		config:        cfg,
		httpClient:    NewHTTPClient(opts, handler),
		metricsWriter: metricsWriter,
	}
}

// FetchQuotes fetches the USD price of every symbol of a comma separated batch. Coins follow
// the order of the batch. A symbol without a usable quote gets a zero price and a warning.
func (c *Client) FetchQuotes(ctx context.Context, batch string) ([]interfaces.Coin, error) {
	symbols := dataset.Split(batch)
	if len(symbols) == 0 {
		return nil, nil
	}

	request, err := NewQuotesRequestBuilder(c.config.URL).
		WithSymbols(batch).
		WithAPIKey(c.config.Token).
		Build(ctx)
	if err != nil {
		c.recordRequest(metrics.StatusError)
		return nil, &TransportError{URL: c.config.URL, Err: err}
	}

	log.Printf("CoinMarketCap: Requesting quotes for %d symbols", len(symbols))

	statusCode, body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, &TransportError{URL: c.config.URL, Err: err}
	}

	var response QuotesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		c.recordRequest(metrics.StatusError)
		return nil, fmt.Errorf("decode response for '%s' (status %d): %w", batch, statusCode, err)
	}

	if response.Status == nil || response.Status.ErrorCode == nil {
		c.recordRequest(metrics.StatusError)
		return nil, fmt.Errorf("%w for '%s'. Raw response: %s", ErrMissingStatus, batch, string(body))
	}

	if code := *response.Status.ErrorCode; code != 0 {
		c.recordRequest(metrics.StatusAPIError)
		message := unknownErrorMessage
		if response.Status.ErrorMessage != nil && *response.Status.ErrorMessage != "" {
			message = *response.Status.ErrorMessage
		}
		return nil, &APIError{Batch: batch, Code: code, Message: message}
	}

	c.recordRequest(metrics.StatusSuccess)

	coins := make([]interfaces.Coin, 0, len(symbols))
	for _, symbol := range symbols {
		coins = append(coins, interfaces.Coin{Symbol: symbol, Price: c.priceOf(response.Data, symbol)})
	}

	log.Printf("CoinMarketCap: Fetched quotes for %d symbols in %.2fs", len(coins), duration.Seconds())

	return coins, nil
}

// priceOf returns the rounded USD price of symbol, zero when the response has none
func (c *Client) priceOf(data map[string][]CoinQuotes, symbol string) decimal.Decimal {
	entries, ok := data[symbol]
	if !ok {
		entries = data[strings.ToUpper(symbol)]
	}
	if len(entries) == 0 {
		log.Printf("CoinMarketCap: No value for %s, value set to 0. Continuing.", symbol)
		c.recordMissingPrice()
		return decimal.Zero
	}

	quote, ok := entries[0].Quote[ConvertCurrency]
	if !ok || quote.Price == nil {
		log.Printf("CoinMarketCap: No price for %s, price set to 0. Continuing.", symbol)
		c.recordMissingPrice()
		return decimal.Zero
	}

	return rounding.RoundNullable(quote.Price)
}

func (c *Client) recordRequest(status string) {
	if c.metricsWriter != nil {
		c.metricsWriter.OnRequest(status)
	}
}

func (c *Client) recordMissingPrice() {
	if c.metricsWriter != nil {
		c.metricsWriter.RecordMissingPrice()
	}
}
