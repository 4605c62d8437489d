package config

import "fmt"

// SheetType selects the spreadsheet format of the tracked document
type SheetType string

const (
	// SheetTypeExcel is an Office Open XML workbook (.xlsx)
	SheetTypeExcel SheetType = "excel"
	// SheetTypeCSV is a comma separated document holding a single table
	SheetTypeCSV SheetType = "csv"
)

// DocumentConfig locates the input and output spreadsheets
type DocumentConfig struct {
	// Type is the spreadsheet format: "excel" or "csv"
	Type SheetType `yaml:"type"`

	// InputPath is the spreadsheet holding the coin symbols
	InputPath string `yaml:"input_path"`

	// OutputPath is where the updated document is saved. It can be the same as InputPath,
	// in which case the input is overwritten.
	OutputPath string `yaml:"output_path"`
}

// SheetConfig selects the sheet inside the document
type SheetConfig struct {
	// Index of the sheet, 0-based
	Index int `yaml:"index"`
}

// TableConfig describes the tracked table and its columns. All indices are 0-based and
// relative to the table's top-left cell.
type TableConfig struct {
	// Name of the table. Case and whitespace are significant.
	Name string `yaml:"name"`

	// StartRowIndex is the first data row; rows before it (usually the title row) are ignored
	StartRowIndex int `yaml:"start_row_index"`

	// EndRowIndex drops trailing rows (e.g. a total row) when negative. 0 processes every row.
	EndRowIndex int `yaml:"end_row_index"`

	// CoinNameColIndex is the column holding the coin symbol (BTC, ETH, ...)
	CoinNameColIndex int `yaml:"coin_name_col_index"`

	// CoinPriceColIndex is the column receiving the fetched price
	CoinPriceColIndex int `yaml:"coin_price_col_index"`

	// DateColIndex is the column receiving the update date, -1 disables it
	DateColIndex int `yaml:"date_col_index"`
}

// Validate validates the document section
func (c *DocumentConfig) Validate() error {
	switch c.Type {
	case SheetTypeExcel, SheetTypeCSV:
	default:
		return fmt.Errorf("unsupported sheet type '%s', choose between %s or %s types", c.Type, SheetTypeExcel, SheetTypeCSV)
	}

	if c.InputPath == "" {
		return fmt.Errorf("input_path is empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path is empty")
	}

	return nil
}

// Validate validates the sheet section
func (c *SheetConfig) Validate() error {
	if c.Index < 0 {
		return fmt.Errorf("sheet index cannot be inferior to 0, got %d", c.Index)
	}
	return nil
}

// Validate validates the table section
func (c *TableConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if c.StartRowIndex < 0 {
		return fmt.Errorf("table start_row_index cannot be inferior to 0, got %d", c.StartRowIndex)
	}
	if c.EndRowIndex > 0 {
		return fmt.Errorf("table end_row_index cannot be superior to 0, got %d", c.EndRowIndex)
	}
	if c.CoinNameColIndex < 0 {
		return fmt.Errorf("table coin_name_col_index cannot be inferior to 0, got %d", c.CoinNameColIndex)
	}
	if c.CoinPriceColIndex < 0 {
		return fmt.Errorf("table coin_price_col_index cannot be inferior to 0, got %d", c.CoinPriceColIndex)
	}
	if c.DateColIndex < -1 {
		return fmt.Errorf("table date_col_index cannot be inferior to -1, got %d", c.DateColIndex)
	}
	return nil
}

// DateEnabled reports whether a date stamp is written next to each price
func (c *TableConfig) DateEnabled() bool {
	return c.DateColIndex >= 0
}
