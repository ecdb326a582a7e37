package source

import (
	"os"

	gopdf "github.com/dslipak/pdf"
	"github.com/pkg/errors"
)

// dslipakExtractor reads pages with github.com/dslipak/pdf.
type dslipakExtractor struct {
	params LayoutParams
}

func (e *dslipakExtractor) Extract(path string) (pages []Page, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat PDF")
	}

	defer recoverPanic(BackendDslipak, &err)

	r, err := gopdf.NewReader(f, info.Size())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF with dslipak")
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
