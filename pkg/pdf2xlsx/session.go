package pdf2xlsx

import (
	"fmt"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/parser"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/source"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/writer"
)

// State is the position of a Session in its load/select/export cycle.
type State string

const (
	StateIdle            State = "idle"
	StatePDFLoaded       State = "pdf_loaded"
	StateTableAssembled  State = "table_assembled"
	StateColumnsSelected State = "columns_selected"
	StateExported        State = "exported"
)

// Session holds the current table and column selection of one user.
// A Session is not safe for concurrent use; serialize calls through a
// single owner.
type Session struct {
	opts       Options
	extractor  source.Extractor
	state      State
	table      *models.Table
	selection  models.ColumnSelection
	diag       Diagnostics
	lastExport *writer.Result
}

// NewSession creates a Session reading PDFs with the backend named in opts.
func NewSession(opts Options) (*Session, error) {
	extractor, err := source.New(opts.Backend, opts.Layout)
	if err != nil {
		return nil, err
	}
	return NewSessionWithExtractor(opts, extractor), nil
}

// NewSessionWithExtractor creates a Session with a custom extractor.
func NewSessionWithExtractor(opts Options, extractor source.Extractor) *Session {
	return &Session{
		opts:      opts,
		extractor: extractor,
		state:     StateIdle,
	}
}

// LoadDocument extracts the table of a PDF file and makes it current.
// The selection is reset. On failure the session returns to idle with no
// table.
func (s *Session) LoadDocument(path string) (*models.Table, error) {
	s.state = StatePDFLoaded
	s.selection.Clear()
	s.lastExport = nil

	table, diag, err := Load(path, s.opts, s.extractor)
	s.diag = diag
	if err != nil {
		s.table = nil
		s.state = StateIdle
		return nil, err
	}

	s.table = table
	s.state = StateTableAssembled
	return table, nil
}

// ToggleColumn flips the selection of a 0-based column index.
func (s *Session) ToggleColumn(index int) error {
	if err := s.checkColumn(index); err != nil {
		return err
	}
	s.selection.Toggle(index)
	s.updateSelectionState()
	return nil
}

// SelectColumns replaces the selection with the given indices.
func (s *Session) SelectColumns(indices ...int) error {
	for _, i := range indices {
		if err := s.checkColumn(i); err != nil {
			return err
		}
	}
	s.selection = models.NewColumnSelection(indices...)
	s.updateSelectionState()
	return nil
}

// ClearSelection deselects every column.
func (s *Session) ClearSelection() {
	s.selection.Clear()
	if s.table != nil {
		s.updateSelectionState()
	}
}

// ExportSelection writes the selected columns to destinationPath.
// startRow 1 creates a fresh workbook; a larger value writes headers at
// startRow-1 and data from startRow into the existing workbook. A failed
// export leaves the table and selection untouched.
func (s *Session) ExportSelection(destinationPath string, startRow int) (*writer.Result, error) {
	if s.table == nil {
		return nil, ErrNoTableLoaded
	}
	if s.selection.Len() == 0 {
		return nil, ErrEmptySelection
	}

	projected, err := parser.Project(s.table, s.selection.Indices())
	if err != nil {
		return nil, NewExportError(destinationPath, startRow, err)
	}

	target := models.ExportTarget{Path: destinationPath, StartRow: startRow}
	res, err := writer.Export(projected, target, s.opts.WriterOptions())
	if err != nil {
		return nil, NewExportError(destinationPath, startRow, err)
	}

	s.lastExport = res
	s.state = StateExported
	return res, nil
}

// Table returns the current table, or nil.
func (s *Session) Table() *models.Table {
	return s.table
}

// Headers returns the addressable column names of the current table.
func (s *Session) Headers() []string {
	if s.table == nil {
		return nil
	}
	return s.table.Headers
}

// Selection returns the selected column indices in ascending order.
func (s *Session) Selection() []int {
	return s.selection.Indices()
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Diagnostics returns the diagnostics of the last load.
func (s *Session) Diagnostics() Diagnostics {
	return s.diag
}

// LastExport returns the result of the last successful export since the
// current table was loaded, or nil.
func (s *Session) LastExport() *writer.Result {
	return s.lastExport
}

func (s *Session) checkColumn(index int) error {
	if s.table == nil {
		return ErrNoTableLoaded
	}
	if index < 0 || index >= s.table.NumColumns() {
		return fmt.Errorf("%w: %d (table has %d columns)", ErrColumnOutOfRange, index, s.table.NumColumns())
	}
	return nil
}

func (s *Session) updateSelectionState() {
	if s.selection.Len() > 0 {
		s.state = StateColumnsSelected
	} else {
		s.state = StateTableAssembled
	}
}
