package spreadsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var portfolioHeader = []any{"Coin", "Quantity", "Date", "Price"}

var portfolioLines = [][]any{
	{"BTC", 1, "", 0},
	{"ETH", 2, "", 0},
	{"SOL", 3, "", 0},
}

// writeExcelPortfolio saves a workbook with the portfolio table named tableName on sheetName,
// its top-left corner at origin
func writeExcelPortfolio(t *testing.T, sheetName, origin, tableName string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		_, err := f.NewSheet(sheetName)
		require.NoError(t, err)
	}

	col, row, err := excelize.CellNameToCoordinates(origin)
	require.NoError(t, err)

	for i, line := range append([][]any{portfolioHeader}, portfolioLines...) {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &line))
	}

	end, err := excelize.CoordinatesToCellName(col+len(portfolioHeader)-1, row+len(portfolioLines))
	require.NoError(t, err)
	require.NoError(t, f.AddTable(sheetName, &excelize.Table{Range: origin + ":" + end, Name: tableName}))

	path := filepath.Join(t.TempDir(), "portfolio.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeCSVPortfolio(t *testing.T, name string) string {
	t.Helper()

	content := "Coin,Quantity,Date,Price\nBTC,1,,0\nETH,2,,0\nSOL,3,,0\n"
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
