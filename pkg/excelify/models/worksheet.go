package models

import (
	"cmp"
	"slices"
)

// Coord is a zero-based (row, column) cell position.
type Coord struct {
	Row uint32
	Col uint32
}

// Cell is a positioned value, as returned by SortedCells.
type Cell struct {
	Coord
	Value CellValue
}

// Worksheet is a sparse grid of cell values. It tracks the largest row and
// column ever written; these bounds never shrink.
type Worksheet struct {
	name   string
	cells  map[Coord]CellValue
	maxRow uint32
	maxCol uint32
}

// NewWorksheet returns an empty worksheet named name.
func NewWorksheet(name string) *Worksheet {
	return &Worksheet{
		name:  name,
		cells: make(map[Coord]CellValue),
	}
}

// Name returns the worksheet name given at construction.
func (ws *Worksheet) Name() string {
	return ws.name
}

// Write stores value at (row, col), replacing any previous value. Writing
// Empty still occupies the slot and still extends the bounds.
func (ws *Worksheet) Write(row, col uint32, value CellValue) {
	ws.cells[Coord{Row: row, Col: col}] = value
	ws.maxRow = max(ws.maxRow, row)
	ws.maxCol = max(ws.maxCol, col)
}

// WriteString writes a String value at (row, col).
func (ws *Worksheet) WriteString(row, col uint32, s string) {
	ws.Write(row, col, StringValue(s))
}

// WriteNumber writes a Number value at (row, col).
func (ws *Worksheet) WriteNumber(row, col uint32, n float64) {
	ws.Write(row, col, NumberValue(n))
}

// WriteBoolean writes a Boolean value at (row, col).
func (ws *Worksheet) WriteBoolean(row, col uint32, b bool) {
	ws.Write(row, col, BooleanValue(b))
}

// Get returns the value at (row, col) and whether it was ever written.
func (ws *Worksheet) Get(row, col uint32) (CellValue, bool) {
	v, ok := ws.cells[Coord{Row: row, Col: col}]
	return v, ok
}

// Dimensions returns the largest row and column written so far, (0, 0) for a
// fresh worksheet.
func (ws *Worksheet) Dimensions() (maxRow, maxCol uint32) {
	return ws.maxRow, ws.maxCol
}

// Len returns the number of occupied slots, Empty values included.
func (ws *Worksheet) Len() int {
	return len(ws.cells)
}

// IsEmpty reports whether no slot has been written.
func (ws *Worksheet) IsEmpty() bool {
	return len(ws.cells) == 0
}

// SortedCells returns every occupied slot ordered by row, then column.
func (ws *Worksheet) SortedCells() []Cell {
	cells := make([]Cell, 0, len(ws.cells))
	for c, v := range ws.cells {
		cells = append(cells, Cell{Coord: c, Value: v})
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if n := cmp.Compare(a.Row, b.Row); n != 0 {
			return n
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return cells
}
