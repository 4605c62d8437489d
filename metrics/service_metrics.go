package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "crypto_sheet_updater_"

// Service constants
const (
	ServiceQuotes = "quotes"
)

// Request statuses
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusAPIError = "api_error"
)

var (
	// Global CoinMarketCap request counter
	// Cardinality: ~3 (success, error, api_error)
	CMCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cmc_requests_total",
			Help: "Total number of HTTP requests to the CoinMarketCap API",
		},
		[]string{"status"},
	)

	// Service-specific CoinMarketCap request counter
	// Cardinality: ~3 (1 service × 3 statuses)
	ServiceCMCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_cmc_requests_total",
			Help: "Total number of HTTP requests to the CoinMarketCap API per service",
		},
		[]string{"service", "status"},
	)

	// Request latency per service
	// Cardinality: ~1
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "HTTP request latency by service",
		},
		[]string{"service"},
	)

	// Batches sent in the last run
	BatchesGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "batches",
			Help: "Number of symbol batches requested in the last run",
		},
	)

	// Coins written in the last run
	CoinsWrittenGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "coins_written",
			Help: "Number of prices written to the sheet in the last run",
		},
	)

	// Symbols priced 0 because the API had no quote for them
	MissingPricesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "missing_prices_total",
			Help: "Total number of requested symbols without a usable quote",
		},
	)
)

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// RecordServiceCMCRequest records a service-specific CoinMarketCap API request
func (mw *MetricsWriter) RecordServiceCMCRequest(status string) {
	CMCRequestsTotal.WithLabelValues(status).Inc()
	ServiceCMCRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
	log.Printf("Metrics: %s CoinMarketCap request recorded with status %s", mw.serviceName, status)
}

// RecordRequestLatency records the latency of one request
func (mw *MetricsWriter) RecordRequestLatency(duration time.Duration) {
	RequestLatencyHistogram.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// RecordMissingPrice counts a symbol written with a zero price
func (mw *MetricsWriter) RecordMissingPrice() {
	MissingPricesCounter.Inc()
}

// RecordRunSummary records the batch and coin counts of a run
func (mw *MetricsWriter) RecordRunSummary(batches, coins int) {
	BatchesGauge.Set(float64(batches))
	CoinsWrittenGauge.Set(float64(coins))
	log.Printf("Metrics: %s run sent %d batches and wrote %d coins", mw.serviceName, batches, coins)
}

// Implement IHttpStatusHandler interface for MetricsWriter
// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordServiceCMCRequest(status)
}

// OnLatency records the duration of an HTTP request
func (mw *MetricsWriter) OnLatency(duration time.Duration) {
	mw.RecordRequestLatency(duration)
}
