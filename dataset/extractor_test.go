package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func portfolioRows(symbols ...string) [][]any {
	rows := [][]any{{"Coin", "Quantity", "Date", "Price"}}
	for _, symbol := range symbols {
		rows = append(rows, []any{symbol, int64(1), "", float64(0)})
	}
	return rows
}

func TestExtract_WithoutSum(t *testing.T) {
	rows := portfolioRows("BTC", "ETH", "SOL")

	batches := Extract(rows, 1, 0, 0)

	assert.Equal(t, []string{"BTC,ETH,SOL"}, batches)
}

func TestExtract_WithSum(t *testing.T) {
	rows := portfolioRows("BTC", "ETH", "SOL")
	rows = append(rows, []any{"TOTAL", "", "", int64(70660)})

	batches := Extract(rows, 1, -1, 0)

	assert.Equal(t, []string{"BTC,ETH,SOL"}, batches)
}

func TestExtract_ExceedBatchLimit(t *testing.T) {
	symbols := []string{"BTC", "ETH", "SOL"}
	for len(symbols) < BatchLimit+1 {
		symbols = append(symbols, "BTC")
	}
	rows := portfolioRows(symbols...)

	batches := Extract(rows, 1, 0, 0)

	assert.Len(t, batches, 2)
	assert.Equal(t, strings.Join(symbols[:BatchLimit], ","), batches[0])
	assert.Equal(t, "BTC", batches[1])
	for _, batch := range batches {
		assert.LessOrEqual(t, len(Split(batch)), BatchLimit)
	}
}

func TestExtract_ExactlyBatchLimit(t *testing.T) {
	symbols := make([]string, BatchLimit)
	for i := range symbols {
		symbols[i] = "ETH"
	}
	rows := portfolioRows(symbols...)

	batches := Extract(rows, 1, 0, 0)

	assert.Len(t, batches, 1)
	assert.Len(t, Split(batches[0]), BatchLimit)
}

func TestExtract_TwoFullBatches(t *testing.T) {
	symbols := make([]string, 2*BatchLimit)
	for i := range symbols {
		symbols[i] = "SOL"
	}

	batches := Extract(portfolioRows(symbols...), 1, 0, 0)

	assert.Len(t, batches, 2)
	assert.Len(t, Split(batches[0]), BatchLimit)
	assert.Len(t, Split(batches[1]), BatchLimit)
}

func TestExtract_EmptyRange(t *testing.T) {
	assert.Equal(t, []string{""}, Extract(portfolioRows(), 1, 0, 0))
	assert.Equal(t, []string{""}, Extract(nil, 0, 0, 0))
	assert.Equal(t, []string{""}, Extract(portfolioRows("BTC"), 1, -5, 0))
	assert.Equal(t, []string{""}, Extract(portfolioRows("BTC"), 10, 0, 0))
}

func TestExtract_CellValues(t *testing.T) {
	rows := [][]any{
		{" BTC "},
		{int64(42)},
		{},
		{nil},
	}

	batches := Extract(rows, 0, 0, 0)

	assert.Equal(t, []string{"BTC,42,,"}, batches)
}

func TestSplit(t *testing.T) {
	assert.Nil(t, Split(""))
	assert.Equal(t, []string{"BTC"}, Split("BTC"))
	assert.Equal(t, []string{"BTC", "SOL", "ETH"}, Split("BTC,SOL,ETH"))
}

func TestExtract_SymbolsLookingLikeNumbers(t *testing.T) {
	rows := [][]any{
		{"Coin", "Price"},
		{"NAN", "0"},
		{"INF", "0"},
		{"007", "0"},
	}

	assert.Equal(t, []string{"NAN,INF,007"}, Extract(rows, 1, 0, 0))
}
