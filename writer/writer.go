package writer

import (
	"fmt"
	"log"
	"time"

	"github.com/status-im/crypto-sheet-updater/interfaces"
	"github.com/status-im/crypto-sheet-updater/spreadsheet"
)

// DateLayout renders the update date as DD/MM/YYYY
const DateLayout = "02/01/2006"

// Options locates the written cells in the table
type Options struct {
	StartRowIndex int
	PriceColIndex int
	// DateColIndex -1 disables the date stamp
	DateColIndex int
	OutputPath   string
	// Now defaults to time.Now
	Now func() time.Time
}

// Write stores the price of coin i at row StartRowIndex+i, stamps the date when enabled, then
// saves the document to OutputPath. The first failing cell aborts before anything is saved.
func Write(doc spreadsheet.Document, coins []interfaces.Coin, opts Options) error {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	date := now().Format(DateLayout)

	for i, coin := range coins {
		row := opts.StartRowIndex + i

		if err := doc.SetCell(row, opts.PriceColIndex, coin.Price.InexactFloat64()); err != nil {
			return fmt.Errorf("write price of %s: %w", coin.Symbol, err)
		}

		if opts.DateColIndex >= 0 {
			if err := doc.SetCell(row, opts.DateColIndex, date); err != nil {
				return fmt.Errorf("write date of %s: %w", coin.Symbol, err)
			}
		}
	}

	if err := doc.Save(opts.OutputPath); err != nil {
		return err
	}

	log.Printf("Writer: Saved %d prices to %s", len(coins), opts.OutputPath)
	return nil
}
