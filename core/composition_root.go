package core

import (
	"github.com/status-im/crypto-sheet-updater/coinmarketcap"
	"github.com/status-im/crypto-sheet-updater/config"
	"github.com/status-im/crypto-sheet-updater/metrics"
)

// Setup wires the CoinMarketCap client and the metrics writer into a pipeline
func Setup(cfg *config.Config) *Pipeline {
	// Metrics writer doubles as the HTTP status handler of the client
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceQuotes)

	// Create CoinMarketCap client with rate limiting from config
	client := coinmarketcap.NewClient(&cfg.CMCAPI, metricsWriter)

	return NewPipeline(cfg, client, metricsWriter)
}
