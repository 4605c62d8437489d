package e2etest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/status-im/crypto-sheet-updater/config"
	"github.com/status-im/crypto-sheet-updater/core"
)

// TestEnv represents a test environment
type TestEnv struct {
	Config     *config.Config
	Pipeline   *core.Pipeline
	MockServer *MockServer
	Context    context.Context
	CancelFunc context.CancelFunc
	ConfigPath string
	InputPath  string
	OutputPath string
}

// SetupTest sets up a pipeline reading a portfolio of symbols and pricing it against a mock
// CoinMarketCap server
func SetupTest(t *testing.T, symbols ...string) *TestEnv {
	// Keep the developer's environment out of the loaded config
	t.Setenv("CMC_API_TOKEN", "")
	t.Setenv("CMC_API_URL", "")

	ctx, cancel := context.WithCancel(context.Background())

	mockServer := NewMockServer("test-api-key")

	dir := t.TempDir()
	inputPath := writeExcelPortfolio(t, dir, symbols)
	outputPath := filepath.Join(dir, "portfolio_update.xlsx")

	cfg, configPath, err := loadTestConfig(dir, mockServer.GetURL(), inputPath, outputPath)
	if err != nil {
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to load test config: %v", err)
	}

	pipeline := core.Setup(cfg)
	pipeline.SetClock(testNow)

	return &TestEnv{
		Config:     cfg,
		Pipeline:   pipeline,
		MockServer: mockServer,
		Context:    ctx,
		CancelFunc: cancel,
		ConfigPath: configPath,
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
}

// TearDown cleans up the test environment
func (env *TestEnv) TearDown() {
	env.CancelFunc()
	env.MockServer.Close()
}
