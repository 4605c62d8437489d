package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/status-im/crypto-sheet-updater/config"
	"github.com/status-im/crypto-sheet-updater/core"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "crypto-sheet-updater",
		Short: "Update the crypto prices of a portfolio spreadsheet",
		Long: `crypto-sheet-updater reads coin symbols from a spreadsheet table, fetches their
latest USD price from CoinMarketCap and writes the rounded prices back into the table.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR : %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline := core.Setup(cfg)

	summary, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	log.Printf("Done: %d prices written to %s", summary.Coins, cfg.Document.OutputPath)
	return nil
}
