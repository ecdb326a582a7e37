package pdf2xlsx

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoTableLoaded indicates an operation that needs a loaded table.
var ErrNoTableLoaded = errors.New("no table loaded")

// ErrEmptySelection indicates an export with no columns selected.
// Nothing is written.
var ErrEmptySelection = errors.New("no columns selected")

// ErrColumnOutOfRange indicates a column index outside the table.
var ErrColumnOutOfRange = parser.ErrColumnOutOfRange

// ExtractionError represents a failure to read a PDF file.
type ExtractionError struct {
	Path  string
	Stage string // "open", "probe", "pages"
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, stage string, err error) *ExtractionError {
	return &ExtractionError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}

// NoTableFoundError reports a readable PDF without tabular content.
type NoTableFoundError struct {
	Path  string
	Pages int
}

func (e *NoTableFoundError) Error() string {
	return fmt.Sprintf("no table found in %q (%d pages)", e.Path, e.Pages)
}

// ExportError represents a failure to write the destination workbook.
type ExportError struct {
	Path     string
	StartRow int
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error for %q at row %d: %v", e.Path, e.StartRow, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(path string, startRow int, err error) *ExportError {
	return &ExportError{
		Path:     path,
		StartRow: startRow,
		Err:      err,
	}
}
