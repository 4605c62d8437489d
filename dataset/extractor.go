package dataset

import (
	"fmt"
	"log"
	"strings"
)

const (
	// BatchLimit is the maximum number of symbols CoinMarketCap accepts in one quotes request
	BatchLimit = 100

	// BatchSeparator joins the symbols of a batch
	BatchSeparator = ","
)

// Extract returns the symbols of rows [startIndex, end) as comma separated batches of at
// most BatchLimit symbols, in row order.
//
// endIndex >= 0 processes every row up to the last one. A negative endIndex drops that many
// trailing rows, e.g. -1 skips a total row. An empty range yields a single empty batch.
func Extract(rows [][]any, startIndex, endIndex, symbolColumn int) []string {
	end := len(rows)
	if endIndex < 0 {
		end = len(rows) + endIndex
	}
	if end < 0 {
		end = 0
	}
	start := max(startIndex, 0)
	if start > end {
		start = end
	}

	var batches []string
	batch := make([]string, 0, BatchLimit)

	for _, row := range rows[start:end] {
		if len(batch) == BatchLimit {
			batches = append(batches, strings.Join(batch, BatchSeparator))
			batch = batch[:0]
		}
		batch = append(batch, symbolAt(row, symbolColumn))
	}

	batches = append(batches, strings.Join(batch, BatchSeparator))

	log.Printf("Dataset: Extracted %d symbols from rows [%d, %d) into %d batches",
		end-start, start, end, len(batches))

	return batches
}

// symbolAt renders the symbol cell of a row, "" when the row is shorter than the column
func symbolAt(row []any, column int) string {
	if column < 0 || column >= len(row) || row[column] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[column]))
}

// Split returns the symbols of a batch in request order
func Split(batch string) []string {
	if batch == "" {
		return nil
	}
	return strings.Split(batch, BatchSeparator)
}
