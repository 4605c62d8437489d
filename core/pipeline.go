package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/status-im/crypto-sheet-updater/config"
	"github.com/status-im/crypto-sheet-updater/dataset"
	"github.com/status-im/crypto-sheet-updater/interfaces"
	"github.com/status-im/crypto-sheet-updater/metrics"
	"github.com/status-im/crypto-sheet-updater/spreadsheet"
	"github.com/status-im/crypto-sheet-updater/writer"
)

// Summary describes a completed run
type Summary struct {
	Batches       int
	Coins         int
	MissingPrices int
	Duration      time.Duration
}

// Pipeline reads the portfolio table, prices every symbol and saves the updated document
type Pipeline struct {
	config        *config.Config
	fetcher       interfaces.QuoteFetcher
	metricsWriter *metrics.MetricsWriter
	now           func() time.Time
}

// NewPipeline creates a pipeline. metricsWriter may be nil.
func NewPipeline(cfg *config.Config, fetcher interfaces.QuoteFetcher, metricsWriter *metrics.MetricsWriter) *Pipeline {
	return &Pipeline{
		config:        cfg,
		fetcher:       fetcher,
		metricsWriter: metricsWriter,
		now:           time.Now,
	}
}

// SetClock replaces the clock used for the date stamp
func (p *Pipeline) SetClock(now func() time.Time) {
	p.now = now
}

// Run performs one update: open, extract, fetch each batch in order, write and save.
// Any error aborts the run before the output document is saved.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	cfg := p.config

	doc, err := spreadsheet.Open(cfg.Document.InputPath, spreadsheet.Format(cfg.Document.Type),
		cfg.Sheet.Index, cfg.Table.Name)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	batches := dataset.Extract(doc.Rows(), cfg.Table.StartRowIndex, cfg.Table.EndRowIndex, cfg.Table.CoinNameColIndex)

	summary := &Summary{}
	coins := make([]interfaces.Coin, 0, len(batches)*dataset.BatchLimit)
	for i, batch := range batches {
		if batch == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batchCoins, err := p.fetcher.FetchQuotes(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("fetch batch %d/%d: %w", i+1, len(batches), err)
		}

		summary.Batches++
		coins = append(coins, batchCoins...)
	}

	for _, coin := range coins {
		if coin.Price.IsZero() {
			summary.MissingPrices++
		}
	}
	summary.Coins = len(coins)

	err = writer.Write(doc, coins, writer.Options{
		StartRowIndex: cfg.Table.StartRowIndex,
		PriceColIndex: cfg.Table.CoinPriceColIndex,
		DateColIndex:  cfg.Table.DateColIndex,
		OutputPath:    cfg.Document.OutputPath,
		Now:           p.now,
	})
	if err != nil {
		return nil, err
	}

	summary.Duration = time.Since(start)
	log.Printf("Pipeline: Updated %d coins from %d batches in %.2fs (%d without price)",
		summary.Coins, summary.Batches, summary.Duration.Seconds(), summary.MissingPrices)

	p.recordMetrics(summary, start)

	return summary, nil
}

// recordMetrics exports run metrics. A failed export is logged without failing the run since
// the document is already saved.
func (p *Pipeline) recordMetrics(summary *Summary, start time.Time) {
	if p.metricsWriter == nil {
		return
	}

	p.metricsWriter.RecordRunSummary(summary.Batches, summary.Coins)
	metrics.RecordRun(string(p.config.Document.Type), start)

	if path := p.config.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			log.Printf("Pipeline: Failed to export metrics to %s: %v", path, err)
		}
	}
}
