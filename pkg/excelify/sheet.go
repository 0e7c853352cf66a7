package excelify

import "github.com/ukaji3/excelify-go/pkg/excelify/models"

// Sheet is a handle to one worksheet of a workbook. It holds the workbook and
// the sheet index rather than the worksheet itself, so every operation goes
// through the owning workbook and its access guard.
type Sheet struct {
	wb    *Workbook
	index int
}

// AddSheet appends an empty worksheet and returns a handle to it.
func (wb *Workbook) AddSheet(name string) *Sheet {
	return &Sheet{wb: wb, index: wb.AddWorksheet(name)}
}

// Index returns the sheet's position in the workbook.
func (s *Sheet) Index() int {
	return s.index
}

// Workbook returns the owning workbook.
func (s *Sheet) Workbook() *Workbook {
	return s.wb
}

// read runs fn on the worksheet under the workbook's shared lock.
func (s *Sheet) read(fn func(ws *models.Worksheet)) error {
	if err := s.wb.acquireShared(); err != nil {
		return err
	}
	defer s.wb.mu.RUnlock()

	ws, err := s.wb.sheetAt(s.index)
	if err != nil {
		return err
	}
	fn(ws)
	return nil
}

// Name returns the name the sheet was added with.
func (s *Sheet) Name() (name string, err error) {
	err = s.read(func(ws *models.Worksheet) {
		name = ws.Name()
	})
	return name, err
}

// Dimensions returns the largest row and column written to the sheet.
func (s *Sheet) Dimensions() (maxRow, maxCol uint32, err error) {
	err = s.read(func(ws *models.Worksheet) {
		maxRow, maxCol = ws.Dimensions()
	})
	return maxRow, maxCol, err
}

// Get returns the value at (row, col) and whether it was ever written.
func (s *Sheet) Get(row, col uint32) (value models.CellValue, ok bool, err error) {
	err = s.read(func(ws *models.Worksheet) {
		value, ok = ws.Get(row, col)
	})
	return value, ok, err
}

// Len returns the number of occupied cells, Empty values included.
func (s *Sheet) Len() (n int, err error) {
	err = s.read(func(ws *models.Worksheet) {
		n = ws.Len()
	})
	return n, err
}

// Cells returns a snapshot of the occupied cells in row-major order.
func (s *Sheet) Cells() (cells []models.Cell, err error) {
	err = s.read(func(ws *models.Worksheet) {
		cells = ws.SortedCells()
	})
	return cells, err
}

// Write stores value at (row, col) through the owning workbook.
func (s *Sheet) Write(row, col uint32, value models.CellValue) error {
	return s.wb.Write(s.index, row, col, value)
}

// WriteString writes a String value at (row, col).
func (s *Sheet) WriteString(row, col uint32, v string) error {
	return s.wb.WriteString(s.index, row, col, v)
}

// WriteNumber writes a Number value at (row, col).
func (s *Sheet) WriteNumber(row, col uint32, v float64) error {
	return s.wb.WriteNumber(s.index, row, col, v)
}

// WriteBoolean writes a Boolean value at (row, col).
func (s *Sheet) WriteBoolean(row, col uint32, v bool) error {
	return s.wb.WriteBoolean(s.index, row, col, v)
}

// WriteValue converts v with models.ValueOf and writes it.
func (s *Sheet) WriteValue(row, col uint32, v any) error {
	return s.wb.WriteValue(s.index, row, col, v)
}

// WriteRef writes value at an A1-style reference such as "B3".
func (s *Sheet) WriteRef(ref string, value models.CellValue) error {
	return s.wb.WriteRef(s.index, ref, value)
}
