// Package main provides the CLI entry point for pdf2xlsx-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/output"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/source"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/writer"
)

var (
	mode       string
	mergeStart int
	budget     int
	header     bool
	noHeader   bool
	backend    string
	noValidate bool
	fixedStart int
	minFields  int
	verbose    bool

	outputPath string
	columns    string
	startRow   int
	appendMode bool
	sheetName  string

	inspectSheet string
	asJSON       bool
	pretty       bool
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pdf2xlsx",
		Short: "Extract tables from PDF files into styled xlsx workbooks",
		Long: `pdf2xlsx-go reads the text layer of a PDF, assembles it into one
rectangular table and exports selected columns to an xlsx sheet.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&mode, "mode", "table", "Extraction mode: table, lines, fixed")
	flags.IntVar(&mergeStart, "merge-start", 4, "First column merged into one field (negative disables)")
	flags.IntVar(&budget, "budget", 10, "Column count of the assembled table (0 uses the widest row)")
	flags.BoolVar(&header, "header", false, "Treat the first row as headers (table mode does this unless --no-header)")
	flags.BoolVar(&noHeader, "no-header", false, "Use synthetic Column N headers and keep the first row as data")
	flags.StringVar(&backend, "backend", "auto", "PDF backend: auto, ledongthuc, dslipak")
	flags.BoolVar(&noValidate, "no-validate", false, "Skip the PDF structure check")
	flags.IntVar(&fixedStart, "fixed-offset", 1, "Token index of the first field in fixed mode")
	flags.IntVar(&minFields, "min-fields", 6, "Minimum token count of a line in fixed mode")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	previewCmd := &cobra.Command{
		Use:   "preview [input.pdf]",
		Short: "Print the assembled table",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of aligned text")
	previewCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	exportCmd := &cobra.Command{
		Use:   "export [input.pdf]",
		Short: "Export selected columns to an xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination xlsx file")
	exportCmd.Flags().StringVarP(&columns, "columns", "c", "", "Comma-separated 0-based column indices (default: all)")
	exportCmd.Flags().IntVar(&startRow, "start-row", 1, "Row where data begins; headers go one row above")
	exportCmd.Flags().BoolVar(&appendMode, "append", false, "Place the block under the existing content of the destination")
	exportCmd.Flags().StringVar(&sheetName, "sheet", writer.DefaultSheetName, "Sheet name of a new workbook")
	exportCmd.MarkFlagRequired("output")
	exportCmd.MarkFlagsMutuallyExclusive("start-row", "append")

	inspectCmd := &cobra.Command{
		Use:   "inspect [book.xlsx]",
		Short: "Print the non-empty rows of a workbook's active sheet as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&inspectSheet, "sheet", "", "Sheet to read (default: active sheet)")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.MarkFlagsMutuallyExclusive("header", "no-header")
	rootCmd.AddCommand(previewCmd, exportCmd, inspectCmd)
	return rootCmd
}

func buildOptions(cmd *cobra.Command) (pdf2xlsx.Options, error) {
	opts := pdf2xlsx.DefaultOptions()

	extractMode, err := pdf2xlsx.ParseMode(mode)
	if err != nil {
		return opts, err
	}
	opts.Mode = extractMode
	opts.MergeStart = mergeStart
	opts.ColumnBudget = budget
	opts.Backend = source.Backend(backend)
	opts.Fixed.Offset = fixedStart
	opts.Fixed.MinFields = minFields
	opts.SheetName = sheetName

	switch {
	case noHeader:
		useHeader := false
		opts.HeaderRow = &useHeader
	case cmd.Flags().Changed("header"):
		opts.HeaderRow = &header
	}
	if noValidate {
		validate := false
		opts.Validate = &validate
	}
	return opts, nil
}

// load opens a session and loads the input PDF.
func load(cmd *cobra.Command, inputPath string) (*pdf2xlsx.Session, error) {
	opts, err := buildOptions(cmd)
	if err != nil {
		return nil, err
	}

	session, err := pdf2xlsx.NewSession(opts)
	if err != nil {
		return nil, err
	}

	table, err := session.LoadDocument(inputPath)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	diag := session.Diagnostics()

	logger.Debug("table assembled",
		"path", inputPath,
		"mode", string(opts.Mode),
		"pages", diag.Pages,
		"rows", diag.Rows,
		"columns", diag.Columns)
	if opts.Mode == pdf2xlsx.ModeFixed {
		logger.Debug("fixed-field lines skipped", "count", diag.SkippedLines)
	}
	if table.NumRows() == 0 {
		logger.Warn("table has headers but no data rows", "path", inputPath)
	}
	return session, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	session, err := load(cmd, args[0])
	if err != nil {
		return err
	}

	if !asJSON {
		return output.WriteText(cmd.OutOrStdout(), session.Table())
	}

	jsonData, err := output.ToJSON(session.Table(), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	session, err := load(cmd, args[0])
	if err != nil {
		return err
	}

	indices, err := parseColumns(columns, session.Table().NumColumns())
	if err != nil {
		return err
	}
	if err := session.SelectColumns(indices...); err != nil {
		return err
	}

	row := startRow
	if appendMode {
		row, err = writer.NextStartRow(outputPath, "")
		if err != nil {
			return fmt.Errorf("failed to read destination: %w", err)
		}
	}

	res, err := session.ExportSelection(outputPath, row)
	if err != nil {
		return err
	}

	logger.Info("exported",
		"path", outputPath,
		"sheet", res.Sheet,
		"range", res.Range,
		"appended", res.Appended)
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	sheet, err := writer.Inspect(args[0], inspectSheet)
	if err != nil {
		return fmt.Errorf("failed to read workbook: %w", err)
	}

	jsonData, err := output.SheetToJSON(sheet, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

// parseColumns parses "0,2,5". An empty list selects every column.
func parseColumns(list string, numColumns int) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		all := make([]int, numColumns)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	var indices []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid column index: %q", part)
		}
		indices = append(indices, i)
	}
	return indices, nil
}
