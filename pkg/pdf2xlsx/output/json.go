// Package output serializes tables and sheets.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
)

// ToJSON serializes a table.
func ToJSON(table *models.Table, pretty bool) ([]byte, error) {
	return marshal(table, pretty)
}

// SheetToJSON serializes a sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// cellSpace keeps tabwriter columns intact for multi-line cells.
var cellSpace = strings.NewReplacer("\t", " ", "\r\n", " ", "\r", " ", "\n", " ")

func textRow(cells []string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = cellSpace.Replace(c)
	}
	return strings.Join(out, "\t")
}

// WriteText renders a table as aligned columns, prefixed by the 0-based
// column index line used for selection.
func WriteText(w io.Writer, table *models.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	indices := make([]string, table.NumColumns())
	for i := range indices {
		indices[i] = fmt.Sprintf("[%d]", i)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(indices, "\t")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, textRow(table.Headers)); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if _, err := fmt.Fprintln(tw, textRow(row)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
