package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every setting of a sheet update run. It is loaded once and never mutated
// after Validate succeeds.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Sheet    SheetConfig    `yaml:"sheet"`
	Table    TableConfig    `yaml:"table"`
	CMCAPI   CMCAPIConfig   `yaml:"cmc_api"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// MetricsConfig configures the prometheus export of a run
type MetricsConfig struct {
	// Textfile is written at the end of the run for the node_exporter textfile collector.
	// Empty disables the export.
	Textfile string `yaml:"textfile"`
}

// Default returns the settings used for keys missing from the config file
func Default() Config {
	return Config{
		Document: DocumentConfig{
			Type: SheetTypeExcel,
		},
		Table: TableConfig{
			StartRowIndex: 1,
			DateColIndex:  -1,
		},
		CMCAPI: CMCAPIConfig{
			URL:            DefaultCMCQuotesURL,
			RequestTimeout: DefaultRequestTimeout,
			RateLimit: RateLimit{
				RateLimitPerMinute: defaultRateLimitPerMinute,
				Burst:              1,
			},
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults, applies environment
// overrides and validates the result
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv keeps secrets out of the config file
func applyEnv(cfg *Config) {
	if v := os.Getenv("CMC_API_TOKEN"); v != "" {
		cfg.CMCAPI.Token = v
	}
	if v := os.Getenv("CMC_API_URL"); v != "" {
		cfg.CMCAPI.URL = v
	}
}

// Validate checks every section and returns the first violated constraint
func (c *Config) Validate() error {
	if err := c.Document.Validate(); err != nil {
		return err
	}
	if err := c.Sheet.Validate(); err != nil {
		return err
	}
	if err := c.Table.Validate(); err != nil {
		return err
	}
	if err := c.CMCAPI.Validate(); err != nil {
		return err
	}
	return nil
}
