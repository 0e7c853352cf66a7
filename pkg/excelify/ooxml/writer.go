// Package ooxml assembles worksheets into a minimal SpreadsheetML package: a
// zip archive holding the content types, the package and workbook
// relationships, the workbook part and one part per worksheet.
package ooxml

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
)

// DefaultCompressionLevel is the deflate level applied to every entry.
const DefaultCompressionLevel = 6

// ErrInvalidText indicates a sheet name or string value that XML 1.0 cannot
// carry: invalid UTF-8 or a character outside the XML Char production.
var ErrInvalidText = errors.New("text not representable in XML")

// Part is one named entry of the package.
type Part struct {
	Name string
	Data []byte
}

// Options configures package assembly.
type Options struct {
	// CompressionLevel is passed to compress/flate. Zero means no compression,
	// use DefaultCompressionLevel for the usual trade-off.
	CompressionLevel int
}

// Writer builds a package from an ordered list of worksheets. Sheet N
// (1-based) is stored at xl/worksheets/sheetN.xml, has sheetId N and is
// linked through relationship rIdN.
type Writer struct {
	sheets []*models.Worksheet
	opts   Options
}

// NewWriter returns a Writer over sheets. The slice is read, never modified.
func NewWriter(sheets []*models.Worksheet, opts Options) *Writer {
	return &Writer{sheets: sheets, opts: opts}
}

// Parts encodes every part in archive order.
func (w *Writer) Parts() ([]Part, error) {
	parts := make([]Part, 0, 4+len(w.sheets))

	add := func(name string, v any) error {
		p, err := encodePart(name, v)
		if err != nil {
			return err
		}
		parts = append(parts, p)
		return nil
	}

	if err := add(PartContentTypes, w.contentTypes()); err != nil {
		return nil, err
	}
	if err := add(PartRootRels, rootRelationships()); err != nil {
		return nil, err
	}
	wb, err := w.workbook()
	if err != nil {
		return nil, &PartError{Part: PartWorkbook, Op: OpEncode, Err: err}
	}
	if err := add(PartWorkbook, wb); err != nil {
		return nil, err
	}
	if err := add(PartWorkbookRels, w.workbookRelationships()); err != nil {
		return nil, err
	}
	for i, ws := range w.sheets {
		name := WorksheetPart(i + 1)
		sheet, err := worksheet(ws)
		if err != nil {
			return nil, &PartError{Part: name, Op: OpEncode, Err: err}
		}
		if err := add(name, sheet); err != nil {
			return nil, err
		}
	}

	return parts, nil
}

// Bytes returns the complete archive.
func (w *Writer) Bytes() ([]byte, error) {
	parts, err := w.Parts()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	level := w.opts.CompressionLevel
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: p.Name, Method: zip.Deflate})
		if err != nil {
			return nil, &PartError{Part: p.Name, Op: OpArchive, Err: err}
		}
		if _, err := fw.Write(p.Data); err != nil {
			return nil, &PartError{Part: p.Name, Op: OpArchive, Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &PartError{Op: OpArchive, Err: err}
	}

	return buf.Bytes(), nil
}

// WriteTo materializes the archive in memory and then copies it to dst.
// Errors from dst are returned as is.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	data, err := w.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := dst.Write(data)
	return int64(n), err
}

// WorksheetPart returns the archive path of the n-th (1-based) worksheet.
func WorksheetPart(n int) string {
	return fmt.Sprintf(worksheetPartFmt, n)
}

// RelID returns the workbook relationship id of the n-th (1-based) worksheet.
func RelID(n int) string {
	return fmt.Sprintf(relIDFmt, n)
}

func encodePart(name string, v any) (Part, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return Part{}, &PartError{Part: name, Op: OpEncode, Err: err}
	}
	return Part{Name: name, Data: append([]byte(xmlHeader), data...)}, nil
}

func (w *Writer) contentTypes() xlsxTypes {
	types := xlsxTypes{
		Defaults: []xlsxDefault{
			{Extension: "rels", ContentType: ContentTypeRelationships},
			{Extension: "xml", ContentType: ContentTypeXML},
		},
		Overrides: []xlsxOverride{
			{PartName: "/" + PartWorkbook, ContentType: ContentTypeWorkbook},
		},
	}
	for i := range w.sheets {
		types.Overrides = append(types.Overrides, xlsxOverride{
			PartName:    "/" + WorksheetPart(i+1),
			ContentType: ContentTypeWorksheet,
		})
	}
	return types
}

func rootRelationships() xlsxRelationships {
	return xlsxRelationships{
		Relationships: []xlsxRelationship{
			{ID: RelID(1), Type: RelTypeOfficeDocument, Target: PartWorkbook},
		},
	}
}

func (w *Writer) workbook() (xlsxWorkbook, error) {
	wb := xlsxWorkbook{XMLNSR: NSDocumentRels}
	for i, ws := range w.sheets {
		if err := checkText(ws.Name()); err != nil {
			return wb, fmt.Errorf("sheet %d name: %w", i+1, err)
		}
		wb.Sheets.Sheet = append(wb.Sheets.Sheet, xlsxSheet{
			Name:    ws.Name(),
			SheetID: i + 1,
			RID:     RelID(i + 1),
		})
	}
	return wb, nil
}

func (w *Writer) workbookRelationships() xlsxRelationships {
	var rels xlsxRelationships
	for i := range w.sheets {
		rels.Relationships = append(rels.Relationships, xlsxRelationship{
			ID:     RelID(i + 1),
			Type:   RelTypeWorksheet,
			Target: fmt.Sprintf(worksheetTargetFmt, i+1),
		})
	}
	return rels
}

// worksheet lays cells out row-major. Empty values produce no <c>, and a row
// whose cells are all Empty produces no <row>.
func worksheet(ws *models.Worksheet) (xlsxWorksheet, error) {
	sheet := xlsxWorksheet{XMLNSR: NSDocumentRels}
	rows := sheet.SheetData.Row
	for _, cell := range ws.SortedCells() {
		if cell.Value.IsEmpty() {
			continue
		}
		if s, ok := cell.Value.AsString(); ok {
			if err := checkText(s); err != nil {
				return sheet, fmt.Errorf("cell %s: %w", models.CellReference(cell.Row, cell.Col), err)
			}
		}
		r := uint64(cell.Row) + 1
		if len(rows) == 0 || rows[len(rows)-1].R != r {
			rows = append(rows, xlsxRow{R: r})
		}
		last := &rows[len(rows)-1]
		last.C = append(last.C, cellElement(cell))
	}
	sheet.SheetData.Row = rows
	return sheet, nil
}

func cellElement(cell models.Cell) xlsxC {
	c := xlsxC{R: models.CellReference(cell.Row, cell.Col)}
	c.T, _ = cell.Value.TypeHint()
	if s, ok := cell.Value.AsString(); ok {
		c.IS = &xlsxIS{T: xlsxT{Val: s, Space: spaceAttr(s)}}
		return c
	}
	c.V = cell.Value.Text()
	return c
}

func spaceAttr(s string) string {
	if s == "" {
		return ""
	}
	switch s[0] {
	case ' ', '\t', '\n', '\r':
		return "preserve"
	}
	switch s[len(s)-1] {
	case ' ', '\t', '\n', '\r':
		return "preserve"
	}
	return ""
}

// checkText rejects text encoding/xml would otherwise replace with U+FFFD.
func checkText(s string) error {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidText, i)
			}
		}
		if !isXMLChar(r) {
			return fmt.Errorf("%w: %U at byte %d", ErrInvalidText, r, i)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
