// Package parser turns raw PDF text into a rectangular table.
package parser

import (
	"strings"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
)

// Tokenize splits one text line into its whitespace-delimited tokens.
// Blank lines yield an empty slice.
func Tokenize(line string) models.RawRow {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return models.RawRow(fields)
}

// TokenizeLines tokenizes every line and drops the blank ones.
func TokenizeLines(lines []string) []models.RawRow {
	var rows []models.RawRow
	for _, line := range lines {
		if tokens := Tokenize(line); len(tokens) > 0 {
			rows = append(rows, tokens)
		}
	}
	return rows
}
