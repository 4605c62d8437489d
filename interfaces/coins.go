package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// Coin is a symbol/price pair returned by the quotes API for one requested symbol.
// Symbols are not deduplicated: a symbol requested twice yields two coins.
type Coin struct {
	Symbol string
	Price  decimal.Decimal
}

// QuoteFetcher fetches the latest USD price of every symbol of a batch.
// The returned coins follow the order of the symbols in the batch.
//
//go:generate mockgen -destination=mocks/quote_fetcher.go . QuoteFetcher
type QuoteFetcher interface {
	// FetchQuotes takes a comma separated batch of at most 100 symbols
	FetchQuotes(ctx context.Context, batch string) ([]Coin, error)
}
