package source

import (
	"os"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// ledongthucExtractor reads pages with github.com/ledongthuc/pdf.
type ledongthucExtractor struct {
	params LayoutParams
}

func (e *ledongthucExtractor) Extract(path string) (pages []Page, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat PDF")
	}

	defer recoverPanic(BackendLedongthuc, &err)

	r, err := lpdf.NewReader(f, info.Size())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF with ledongthuc")
	}

	numPages := r.NumPage()
	pages = make([]Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}

		texts := p.Content().Text
		frags := make([]Fragment, 0, len(texts))
		for _, t := range texts {
			frags = append(frags, Fragment{X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize, S: t.S})
		}
		pages = append(pages, BuildPage(i, frags, e.params))
	}

	return pages, nil
}
