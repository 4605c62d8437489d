package e2etest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/status-im/crypto-sheet-updater/config"
)

// createTestConfig writes a configuration updating the excel table of inputPath into
// outputPath, with quotes fetched from mockURL. It returns the path of the config file.
func createTestConfig(dir, mockURL, inputPath, outputPath string) (string, error) {
	configContent := `
document:
  type: excel
  input_path: "%s"
  output_path: "%s"
sheet:
  index: 0
table:
  name: table_1
  start_row_index: 1
  end_row_index: -1         # skip the total row
  coin_name_col_index: 0
  coin_price_col_index: 3
  date_col_index: 2
cmc_api:
  url: "%s"                 # mock quotes endpoint
  token: test-api-key
  request_timeout: 2s
  rate_limit:
    rate_limit_per_minute: 0 # no pacing in tests
metrics:
  textfile: "%s"
`

	configContent = sprintf(configContent, inputPath, outputPath, mockURL, filepath.Join(dir, "metrics.prom"))

	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return "", err
	}

	return configPath, nil
}

// loadTestConfig creates and loads test configuration
func loadTestConfig(dir, mockURL, inputPath, outputPath string) (*config.Config, string, error) {
	configPath, err := createTestConfig(dir, mockURL, inputPath, outputPath)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, "", err
	}

	return cfg, configPath, nil
}

// sprintf - helper function for string formatting
func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
