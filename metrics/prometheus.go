package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunDurationHistogram tracks the duration of a whole sheet update run
	RunDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "run_duration_seconds",
			Help: "Time taken to read, price and save a portfolio sheet",
		},
		[]string{"format"},
	)

	// LastRunTimestampGauge is set when a run saves its document
	LastRunTimestampGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "last_success_timestamp_seconds",
			Help: "Unix time of the last run that saved its document",
		},
	)
)

// RecordRun measures and records the duration of a sheet update run
func RecordRun(format string, start time.Time) {
	duration := time.Since(start)
	RunDurationHistogram.WithLabelValues(format).Observe(duration.Seconds())
	LastRunTimestampGauge.SetToCurrentTime()
	log.Printf("Metrics: %s run took %.2fs", format, duration.Seconds())
}

// WriteTextfile exports every registered metric to path in the text exposition format read by
// node_exporter's textfile collector
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return err
	}
	log.Printf("Metrics: Exported to %s", path)
	return nil
}
