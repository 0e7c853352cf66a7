package excelify

import (
	"archive/zip"
	"path/filepath"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/ukaji3/excelify-go/pkg/excelify/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a package back: its parts, its sheets in workbook order and,
// unless disabled, the non-empty cells of each sheet. The package is checked
// for consistent cross references first.
func Inspect(path string, opts InspectOptions) (*models.WorkbookData, error) {
	manifest, err := parser.ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	wb := &models.WorkbookData{
		BookName: filepath.Base(path),
		Parts:    manifest.Parts,
		Sheets:   []models.SheetData{},
	}

	var (
		f  *excelize.File
		zr *zip.ReadCloser
	)
	if opts.ShouldIncludeRows() {
		if f, err = excelize.OpenFile(path); err != nil {
			return nil, err
		}
		defer f.Close()
		if zr, err = zip.OpenReader(path); err != nil {
			return nil, err
		}
		defer zr.Close()
	}

	nameCount := make(map[string]int)
	for _, entry := range manifest.Sheets {
		nameCount[entry.Name]++
	}

	for _, entry := range manifest.Sheets {
		if !opts.ShouldIncludeSheet(entry.Name) {
			continue
		}
		sheet := models.SheetData{
			Name:    entry.Name,
			SheetID: entry.SheetID,
			RelID:   entry.RelID,
			Part:    entry.Part,
		}

		if opts.ShouldIncludeRows() {
			var rows []models.CellRow
			// excelize addresses sheets by name, so repeated names are read
			// from their part directly.
			if nameCount[entry.Name] > 1 {
				rows, err = parser.DecodeSheetCells(&zr.Reader, entry.Part)
			} else {
				rows, err = parser.ExtractCells(f, entry.Name)
			}
			if err != nil {
				return nil, &InspectError{SheetName: entry.Name, Part: entry.Part, Err: err}
			}
			sheet.Rows = rows
			sheet.UsedRange = parser.UsedRange(rows)
		}

		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}
