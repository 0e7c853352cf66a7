package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/excelify-go/pkg/excelify"
	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/ukaji3/excelify-go/pkg/excelify/parser"
)

func runConvert(cmd *cobra.Command, args []string) error {
	if len(sheetNames) > len(args) {
		return fmt.Errorf("%d sheet names given for %d inputs", len(sheetNames), len(args))
	}

	target := outputPath
	if target == "" {
		target = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".xlsx"
	}

	wb := excelify.New()
	if err := wb.SetSaveOptions(excelify.SaveOptions{CompressionLevel: level}); err != nil {
		return err
	}

	for i, input := range args {
		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		if i < len(sheetNames) {
			name = sheetNames[i]
		}

		records, err := readCSV(input)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", input, err)
		}

		sheet := wb.AddSheet(name)
		written, err := writeRecords(sheet, records, !noInfer)
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", input, err)
		}
		cmd.PrintErrf("%s: %d rows, %d cells -> sheet %q\n", input, len(records), written, name)
	}

	if err := wb.Save(target); err != nil {
		return fmt.Errorf("failed to save %s: %w", target, err)
	}

	if verifyAfter {
		manifest, err := parser.ReadManifest(target)
		if err != nil {
			return fmt.Errorf("failed to read back %s: %w", target, err)
		}
		if err := manifest.Validate(); err != nil {
			return fmt.Errorf("written package is inconsistent: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d sheet(s) to %s\n", wb.SheetCount(), target)
	return nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// writeRecords writes each non-empty field at its (row, column) and returns
// the number of cells written.
func writeRecords(sheet *excelify.Sheet, records [][]string, infer bool) (int, error) {
	written := 0
	for r, record := range records {
		for c, field := range record {
			if field == "" {
				continue
			}
			if err := sheet.Write(uint32(r), uint32(c), parseField(field, infer)); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}

// parseField maps a CSV field to a cell value: booleans for true/false,
// numbers when the field parses as a float, strings otherwise.
func parseField(s string, infer bool) models.CellValue {
	if !infer {
		return models.StringValue(s)
	}
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "true":
		return models.BooleanValue(true)
	case "false":
		return models.BooleanValue(false)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !isSpecialFloat(trimmed) {
		return models.NumberValue(f)
	}
	return models.StringValue(s)
}

// isSpecialFloat reports spellings ParseFloat accepts that should stay text.
func isSpecialFloat(s string) bool {
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "inf", "infinity", "nan":
		return true
	}
	return false
}
