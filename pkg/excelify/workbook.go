package excelify

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/ukaji3/excelify-go/pkg/excelify/ooxml"
)

// Workbook is an ordered, append-only collection of worksheets. Sheet
// indices are assigned by AddWorksheet and never change. Sheet names need
// not be unique.
//
// A Workbook is not safe for concurrent use. Conflicting calls are detected
// and fail fast with ErrConcurrentAccess instead of corrupting state; methods
// without an error result panic with that error. Worksheets are only reachable
// through Sheet handles, which take the same guard.
type Workbook struct {
	mu     sync.RWMutex
	sheets []*models.Worksheet
	opts   SaveOptions
}

// New creates an empty workbook with default save options.
func New() *Workbook {
	return &Workbook{opts: DefaultSaveOptions()}
}

func (wb *Workbook) acquire() error {
	if !wb.mu.TryLock() {
		return concurrentAccess()
	}
	return nil
}

func (wb *Workbook) acquireShared() error {
	if !wb.mu.TryRLock() {
		return concurrentAccess()
	}
	return nil
}

// AddWorksheet appends an empty worksheet and returns its zero-based index.
func (wb *Workbook) AddWorksheet(name string) int {
	if err := wb.acquire(); err != nil {
		panic(err)
	}
	defer wb.mu.Unlock()

	wb.sheets = append(wb.sheets, models.NewWorksheet(name))
	return len(wb.sheets) - 1
}

// SheetCount returns the number of worksheets.
func (wb *Workbook) SheetCount() int {
	if err := wb.acquireShared(); err != nil {
		panic(err)
	}
	defer wb.mu.RUnlock()

	return len(wb.sheets)
}

// Worksheets returns handles to every worksheet in workbook order.
func (wb *Workbook) Worksheets() []*Sheet {
	n := wb.SheetCount()
	out := make([]*Sheet, n)
	for i := range out {
		out[i] = &Sheet{wb: wb, index: i}
	}
	return out
}

// Worksheet returns a handle to the worksheet at index.
func (wb *Workbook) Worksheet(index int) (*Sheet, error) {
	if err := wb.acquireShared(); err != nil {
		return nil, err
	}
	defer wb.mu.RUnlock()

	if _, err := wb.sheetAt(index); err != nil {
		return nil, err
	}
	return &Sheet{wb: wb, index: index}, nil
}

func (wb *Workbook) sheetAt(index int) (*models.Worksheet, error) {
	if index < 0 || index >= len(wb.sheets) {
		return nil, sheetNotFound(index)
	}
	return wb.sheets[index], nil
}

// SetSaveOptions replaces the options used by Save and WriteTo.
func (wb *Workbook) SetSaveOptions(opts SaveOptions) error {
	if err := wb.acquire(); err != nil {
		return err
	}
	defer wb.mu.Unlock()

	wb.opts = opts
	return nil
}

// Write stores value at (row, col) of the sheet at sheetIndex. An invalid
// index fails with ErrSheetNotFound and leaves the workbook untouched.
func (wb *Workbook) Write(sheetIndex int, row, col uint32, value models.CellValue) error {
	if err := wb.acquire(); err != nil {
		return err
	}
	defer wb.mu.Unlock()

	ws, err := wb.sheetAt(sheetIndex)
	if err != nil {
		return err
	}
	ws.Write(row, col, value)
	return nil
}

// WriteString writes a String value.
func (wb *Workbook) WriteString(sheetIndex int, row, col uint32, s string) error {
	return wb.Write(sheetIndex, row, col, models.StringValue(s))
}

// WriteNumber writes a Number value.
func (wb *Workbook) WriteNumber(sheetIndex int, row, col uint32, n float64) error {
	return wb.Write(sheetIndex, row, col, models.NumberValue(n))
}

// WriteBoolean writes a Boolean value.
func (wb *Workbook) WriteBoolean(sheetIndex int, row, col uint32, b bool) error {
	return wb.Write(sheetIndex, row, col, models.BooleanValue(b))
}

// WriteValue converts v with models.ValueOf and writes it.
func (wb *Workbook) WriteValue(sheetIndex int, row, col uint32, v any) error {
	value, err := models.ValueOf(v)
	if err != nil {
		return err
	}
	return wb.Write(sheetIndex, row, col, value)
}

// WriteRef writes value at an A1-style reference such as "B3".
func (wb *Workbook) WriteRef(sheetIndex int, ref string, value models.CellValue) error {
	row, col, err := models.ParseCellReference(ref)
	if err != nil {
		return &Error{Kind: KindInvalidCellReference, Ref: ref, Err: err}
	}
	return wb.Write(sheetIndex, row, col, value)
}

// Save writes the workbook to path. The archive is built in memory first;
// if writing the file fails, a truncated file may remain at path.
func (wb *Workbook) Save(path string) error {
	data, err := wb.build()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &Error{Kind: KindIO, Err: err}
	}
	return nil
}

// WriteTo writes the archive to w.
func (wb *Workbook) WriteTo(w io.Writer) (int64, error) {
	data, err := wb.build()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err != nil {
		return int64(n), &Error{Kind: KindIO, Err: err}
	}
	return int64(n), nil
}

func (wb *Workbook) build() ([]byte, error) {
	if err := wb.acquireShared(); err != nil {
		return nil, err
	}
	defer wb.mu.RUnlock()

	opts := ooxml.Options{CompressionLevel: wb.opts.EffectiveCompressionLevel()}
	data, err := ooxml.NewWriter(wb.sheets, opts).Bytes()
	if err != nil {
		return nil, classify(err)
	}
	return data, nil
}

// classify maps a package assembly failure to its Kind.
func classify(err error) *Error {
	var pe *ooxml.PartError
	if errors.As(err, &pe) && pe.Op == ooxml.OpEncode {
		return &Error{Kind: KindXML, Err: err}
	}
	return &Error{Kind: KindArchive, Err: err}
}
