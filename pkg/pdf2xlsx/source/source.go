// Package source reads raw text lines and table rows from PDF files.
//
// Two pure-Go backends are available. Both only see the embedded text
// layer; scanned (image-only) PDFs yield empty pages.
package source

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
)

// Backend names a PDF parsing library.
type Backend string

const (
	// BackendAuto tries ledongthuc first and falls back to dslipak.
	BackendAuto Backend = "auto"
	// BackendLedongthuc uses github.com/ledongthuc/pdf.
	BackendLedongthuc Backend = "ledongthuc"
	// BackendDslipak uses github.com/dslipak/pdf.
	BackendDslipak Backend = "dslipak"
)

// Page is the text of one PDF page.
type Page struct {
	// Number is the page number (1-based).
	Number int `json:"number"`
	// Lines holds one string per visual text line, top to bottom.
	Lines []string `json:"lines,omitempty"`
	// Rows holds the same lines split into cells at wide horizontal gaps.
	Rows []models.RawRow `json:"rows,omitempty"`
}

// Extractor reads every page of a PDF file in page order.
type Extractor interface {
	Extract(path string) ([]Page, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(path string) ([]Page, error)

// Extract calls fn(path).
func (fn ExtractorFunc) Extract(path string) ([]Page, error) {
	return fn(path)
}

// New returns the Extractor for backend.
func New(backend Backend, params LayoutParams) (Extractor, error) {
	switch backend {
	case BackendLedongthuc:
		return &ledongthucExtractor{params: params}, nil
	case BackendDslipak:
		return &dslipakExtractor{params: params}, nil
	case BackendAuto, "":
		return &fallbackExtractor{
			primary:   &ledongthucExtractor{params: params},
			secondary: &dslipakExtractor{params: params},
		}, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s (must be auto, ledongthuc, or dslipak)", backend)
	}
}

// fallbackExtractor retries with a second backend when the first fails.
type fallbackExtractor struct {
	primary   Extractor
	secondary Extractor
}

func (e *fallbackExtractor) Extract(path string) ([]Page, error) {
	pages, err := e.primary.Extract(path)
	if err == nil {
		return pages, nil
	}
	pages, err2 := e.secondary.Extract(path)
	if err2 != nil {
		return nil, errors.Wrapf(err, "fallback also failed (%v)", err2)
	}
	return pages, nil
}

// recoverPanic turns a panic raised while walking PDF objects into an error.
// The parsing libraries panic on some malformed content streams.
func recoverPanic(backend Backend, err *error) {
	if r := recover(); r != nil {
		*err = errors.Errorf("%s: malformed PDF content: %v", backend, r)
	}
}
