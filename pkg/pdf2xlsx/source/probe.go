package source

import (
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"
)

var disableConfigDir sync.Once

// Probe validates the structure of a PDF file and returns its page count.
// Validation is relaxed so that files accepted by common viewers pass.
func Probe(path string) (int, error) {
	// Keep pdfcpu from creating its configuration directory on disk.
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return 0, errors.Wrap(err, "invalid PDF")
	}

	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pages")
	}
	return n, nil
}
