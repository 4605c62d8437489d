package e2etest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/status-im/crypto-sheet-updater/spreadsheet"
)

func testNow() time.Time {
	return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
}

// writeExcelPortfolio saves a portfolio table with one row per symbol followed by a total row
func writeExcelPortfolio(t *testing.T, dir string, symbols []string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	lines := [][]any{{"Coin", "Quantity", "Date", "Price"}}
	for _, symbol := range symbols {
		lines = append(lines, []any{symbol, 1, "", 0})
	}
	lines = append(lines, []any{"TOTAL", "", "", 0})

	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &line))
	}
	end, err := excelize.CoordinatesToCellName(4, len(lines))
	require.NoError(t, err)
	require.NoError(t, f.AddTable("Sheet1", &excelize.Table{Range: "A1:" + end, Name: "table_1"}))

	path := filepath.Join(dir, "portfolio.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// readOutputRows reopens the saved document and returns its table rows
func readOutputRows(t *testing.T, env *TestEnv) [][]any {
	t.Helper()

	doc, err := spreadsheet.Open(env.OutputPath, spreadsheet.FormatExcel, 0, "table_1")
	require.NoError(t, err)
	defer doc.Close()

	return doc.Rows()
}
