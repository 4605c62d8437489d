package spreadsheet

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound    = errors.New("file not found or not readable")
	ErrSheetNotFound   = errors.New("sheet not found")
	ErrTableNotFound   = errors.New("table not found")
	ErrEmptyTableRange = errors.New("table range is empty")
)

// OpenError reports a document that could not be opened or resolved
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open spreadsheet %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
