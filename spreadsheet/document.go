package spreadsheet

import (
	"fmt"
	"log"
	"os"
)

// Format identifies the on-disk layout of a portfolio document
type Format string

const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
)

// Document is an opened spreadsheet narrowed to one table of one sheet.
// Row and column indexes are 0-based and relative to the table's top-left cell.
type Document interface {
	// Rows returns the table range, header row included, top to bottom and left to right
	Rows() [][]any
	// SetCell writes value at (row, col) of the table
	SetCell(row, col int, value any) error
	// Save persists the whole document to path, overwriting any existing file
	Save(path string) error
	Close() error
}

// Open opens the document at path and resolves the table named tableName in the sheet at
// sheetIndex
func Open(path string, format Format, sheetIndex int, tableName string) (Document, error) {
	if err := checkReadable(path); err != nil {
		return nil, err
	}

	var (
		doc Document
		err error
	)
	switch format {
	case FormatExcel:
		doc, err = openExcel(path, sheetIndex, tableName)
	case FormatCSV:
		doc, err = openCSV(path, sheetIndex, tableName)
	default:
		return nil, &OpenError{Path: path, Err: fmt.Errorf("unsupported format '%s'", format)}
	}
	if err != nil {
		return nil, err
	}

	log.Printf("Spreadsheet: Opened %s table '%s' of sheet %d in %s (%d rows)",
		format, tableName, sheetIndex, path, len(doc.Rows()))

	return doc, nil
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &OpenError{Path: path, Err: fmt.Errorf("%w: %w", ErrFileNotFound, err)}
	}
	return f.Close()
}
