package writer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/status-im/crypto-sheet-updater/interfaces"
	"github.com/status-im/crypto-sheet-updater/spreadsheet"
)

var testCoins = []interfaces.Coin{
	{Symbol: "BTC", Price: decimal.RequireFromString("68000.12")},
	{Symbol: "ETH", Price: decimal.RequireFromString("2500.46")},
	{Symbol: "SOL", Price: decimal.RequireFromString("0.0016")},
}

func fixedNow() time.Time {
	return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
}

func writeExcelPortfolio(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	lines := [][]any{
		{"Coin", "Quantity", "Date", "Price"},
		{"BTC", 1, "", 0},
		{"ETH", 2, "", 0},
		{"SOL", 3, "", 0},
	}
	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &line))
	}
	require.NoError(t, f.AddTable("Sheet1", &excelize.Table{Range: "A1:D4", Name: "table_1"}))

	path := filepath.Join(t.TempDir(), "test_sheet.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestWrite_Excel(t *testing.T) {
	path := writeExcelPortfolio(t)
	doc, err := spreadsheet.Open(path, spreadsheet.FormatExcel, 0, "table_1")
	require.NoError(t, err)
	defer doc.Close()

	out := filepath.Join(t.TempDir(), "test_sheet_update.xlsx")
	err = Write(doc, testCoins, Options{
		StartRowIndex: 1,
		PriceColIndex: 3,
		DateColIndex:  2,
		OutputPath:    out,
		Now:           fixedNow,
	})
	require.NoError(t, err)

	reloaded, err := spreadsheet.Open(out, spreadsheet.FormatExcel, 0, "table_1")
	require.NoError(t, err)
	defer reloaded.Close()

	assert.Equal(t, [][]any{
		{"Coin", "Quantity", "Date", "Price"},
		{"BTC", int64(1), "19/10/2026", 68000.12},
		{"ETH", int64(2), "19/10/2026", 2500.46},
		{"SOL", int64(3), "19/10/2026", 0.0016},
	}, reloaded.Rows())
}

func TestWrite_CSVWithoutDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	require.NoError(t, os.WriteFile(path, []byte("Coin,Quantity,Date,Price\nBTC,1,,0\nETH,2,,0\nSOL,3,,0\n"), 0o600))

	doc, err := spreadsheet.Open(path, spreadsheet.FormatCSV, 0, "portfolio")
	require.NoError(t, err)

	err = Write(doc, testCoins, Options{
		StartRowIndex: 1,
		PriceColIndex: 3,
		DateColIndex:  -1,
		OutputPath:    path,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Coin,Quantity,Date,Price\nBTC,1,,68000.12\nETH,2,,2500.46\nSOL,3,,0.0016\n", string(content))
}

func TestWrite_NoCoins(t *testing.T) {
	path := writeExcelPortfolio(t)
	doc, err := spreadsheet.Open(path, spreadsheet.FormatExcel, 0, "table_1")
	require.NoError(t, err)
	defer doc.Close()

	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Write(doc, nil, Options{StartRowIndex: 1, PriceColIndex: 3, DateColIndex: 2, OutputPath: out}))

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

// failingDocument rejects every write
type failingDocument struct {
	saved bool
}

func (d *failingDocument) Rows() [][]any { return nil }

func (d *failingDocument) SetCell(row, col int, value any) error {
	return errors.New("read-only")
}

func (d *failingDocument) Save(path string) error {
	d.saved = true
	return nil
}

func (d *failingDocument) Close() error { return nil }

func TestWrite_SetCellFailureAbortsBeforeSave(t *testing.T) {
	doc := &failingDocument{}

	err := Write(doc, testCoins, Options{StartRowIndex: 1, PriceColIndex: 3, DateColIndex: -1, OutputPath: "out.xlsx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write price of BTC")
	assert.False(t, doc.saved)
}
