package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// csvDocument is a Document backed by a comma separated file. The file holds a single sheet
// whose only table spans every record and is named after the file name without extension.
// Cells are kept as the strings read from the file so untouched cells are saved unchanged.
type csvDocument struct {
	path  string
	table string
	rows  [][]any
}

// TableNameFromPath returns the table name a csv document exposes
func TableNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func openCSV(path string, sheetIndex int, tableName string) (*csvDocument, error) {
	if sheetIndex != 0 {
		return nil, &OpenError{
			Path: path,
			Err:  fmt.Errorf("%w: index %d, document has 1 sheet", ErrSheetNotFound, sheetIndex),
		}
	}

	name := TableNameFromPath(path)
	if tableName != name {
		return nil, &OpenError{
			Path: path,
			Err:  fmt.Errorf("%w: '%s', csv documents expose table '%s'", ErrTableNotFound, tableName, name),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("parse csv: %w", err)}
	}

	rows := make([][]any, 0, len(records))
	for _, record := range records {
		row := make([]any, 0, len(record))
		for _, field := range record {
			row = append(row, field)
		}
		rows = append(rows, row)
	}

	return &csvDocument{path: path, table: name, rows: rows}, nil
}

func (d *csvDocument) Rows() [][]any {
	return d.rows
}

// SetCell grows the grid when the position lies past the current records
func (d *csvDocument) SetCell(row, col int, value any) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("invalid cell position (%d, %d) in table '%s'", row, col, d.table)
	}

	for len(d.rows) <= row {
		d.rows = append(d.rows, []any{})
	}
	for len(d.rows[row]) <= col {
		d.rows[row] = append(d.rows[row], "")
	}
	d.rows[row][col] = value
	return nil
}

func (d *csvDocument) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	for _, row := range d.rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (d *csvDocument) Close() error {
	return nil
}
