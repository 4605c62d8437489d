package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellRange is a 1-based inclusive rectangle of sheet coordinates
type cellRange struct {
	c1, r1, c2, r2 int
}

// excelDocument is a Document backed by an Excel table (ListObject) of an xlsx workbook
type excelDocument struct {
	path  string
	file  *excelize.File
	sheet string
	table string
	bound cellRange
	rows  [][]any
}

func openExcel(path string, sheetIndex int, tableName string) (*excelDocument, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	doc, err := resolveExcelTable(f, path, sheetIndex, tableName)
	if err != nil {
		f.Close()
		return nil, err
	}

	return doc, nil
}

func resolveExcelTable(f *excelize.File, path string, sheetIndex int, tableName string) (*excelDocument, error) {
	sheets := f.GetSheetList()
	if sheetIndex < 0 || sheetIndex >= len(sheets) {
		return nil, &OpenError{
			Path: path,
			Err:  fmt.Errorf("%w: index %d, document has %d sheets", ErrSheetNotFound, sheetIndex, len(sheets)),
		}
	}
	sheet := sheets[sheetIndex]

	tables, err := f.GetTables(sheet)
	if err != nil {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("list tables of sheet '%s': %w", sheet, err)}
	}

	for _, table := range tables {
		if table.Name != tableName {
			continue
		}
		bound, err := tableBounds(tableName, table.Range)
		if err != nil {
			return nil, &OpenError{Path: path, Err: err}
		}

		doc := &excelDocument{
			path:  path,
			file:  f,
			sheet: sheet,
			table: tableName,
			bound: bound,
		}
		if doc.rows, err = doc.readRows(); err != nil {
			return nil, &OpenError{Path: path, Err: err}
		}
		return doc, nil
	}

	return nil, &OpenError{
		Path: path,
		Err:  fmt.Errorf("%w: '%s' in sheet '%s'", ErrTableNotFound, tableName, sheet),
	}
}

// tableBounds resolves the cell range of a table, rejecting tables without a range reference
func tableBounds(tableName, ref string) (cellRange, error) {
	if strings.TrimSpace(ref) == "" {
		return cellRange{}, fmt.Errorf("%w: table '%s'", ErrEmptyTableRange, tableName)
	}

	bound, err := parseRange(ref)
	if err != nil {
		return cellRange{}, fmt.Errorf("table '%s': %w", tableName, err)
	}
	return bound, nil
}

// parseRange parses a reference like A1:D10 or $A$1:$D$10
func parseRange(ref string) (cellRange, error) {
	parts := strings.Split(strings.ReplaceAll(ref, "$", ""), ":")
	if len(parts) != 2 {
		return cellRange{}, fmt.Errorf("invalid range reference '%s'", ref)
	}

	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return cellRange{}, fmt.Errorf("invalid range reference '%s': %w", ref, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return cellRange{}, fmt.Errorf("invalid range reference '%s': %w", ref, err)
	}

	return cellRange{c1: min(c1, c2), r1: min(r1, r2), c2: max(c1, c2), r2: max(r1, r2)}, nil
}

func (d *excelDocument) readRows() ([][]any, error) {
	rows := make([][]any, 0, d.bound.r2-d.bound.r1+1)
	for r := d.bound.r1; r <= d.bound.r2; r++ {
		row := make([]any, 0, d.bound.c2-d.bound.c1+1)
		for c := d.bound.c1; c <= d.bound.c2; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			value, err := d.file.GetCellValue(d.sheet, cell, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, fmt.Errorf("read cell %s of sheet '%s': %w", cell, d.sheet, err)
			}
			row = append(row, parseValue(value))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (d *excelDocument) Rows() [][]any {
	return d.rows
}

func (d *excelDocument) SetCell(row, col int, value any) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("invalid cell position (%d, %d) in table '%s'", row, col, d.table)
	}

	cell, err := excelize.CoordinatesToCellName(d.bound.c1+col, d.bound.r1+row)
	if err != nil {
		return fmt.Errorf("cell position (%d, %d) in table '%s': %w", row, col, d.table, err)
	}
	if err := d.file.SetCellValue(d.sheet, cell, value); err != nil {
		return fmt.Errorf("write cell %s of sheet '%s': %w", cell, d.sheet, err)
	}

	if row < len(d.rows) && col < len(d.rows[row]) {
		d.rows[row][col] = value
	}
	return nil
}

func (d *excelDocument) Save(path string) error {
	if err := d.file.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (d *excelDocument) Close() error {
	return d.file.Close()
}
