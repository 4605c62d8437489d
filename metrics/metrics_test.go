package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, g.Write(m))
	return m.GetGauge().GetValue()
}

func TestMetricsWriter_OnRequest(t *testing.T) {
	mw := NewMetricsWriter(ServiceQuotes)

	before := counterValue(t, CMCRequestsTotal.WithLabelValues(StatusAPIError))
	beforeService := counterValue(t, ServiceCMCRequestsTotal.WithLabelValues(ServiceQuotes, StatusAPIError))

	mw.OnRequest(StatusAPIError)
	mw.OnRequest(StatusAPIError)

	assert.Equal(t, before+2, counterValue(t, CMCRequestsTotal.WithLabelValues(StatusAPIError)))
	assert.Equal(t, beforeService+2, counterValue(t, ServiceCMCRequestsTotal.WithLabelValues(ServiceQuotes, StatusAPIError)))
}

func TestMetricsWriter_RunSummary(t *testing.T) {
	mw := NewMetricsWriter(ServiceQuotes)
	before := counterValue(t, MissingPricesCounter)

	mw.RecordMissingPrice()
	mw.RecordRunSummary(2, 101)
	mw.OnLatency(150 * time.Millisecond)

	assert.Equal(t, before+1, counterValue(t, MissingPricesCounter))
	assert.Equal(t, float64(2), gaugeValue(t, BatchesGauge))
	assert.Equal(t, float64(101), gaugeValue(t, CoinsWrittenGauge))
}

func TestWriteTextfile(t *testing.T) {
	NewMetricsWriter(ServiceQuotes).OnRequest(StatusSuccess)
	RecordRun("excel", time.Now().Add(-time.Second))

	path := filepath.Join(t.TempDir(), "crypto_sheet_updater.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), MetricsPrefix+"cmc_requests_total")
	assert.Contains(t, string(content), MetricsPrefix+"run_duration_seconds")
	assert.Contains(t, string(content), MetricsPrefix+"last_success_timestamp_seconds")
}

func TestWriteTextfile_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "metrics.prom")
	assert.Error(t, WriteTextfile(path))
}
