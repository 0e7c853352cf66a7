// Package models defines the spreadsheet data model and the shapes used when
// a written package is read back.
package models

// CellRow represents a single row of cells read back from a package.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column letter to cell value (string, float64 or bool).
	C map[string]any `json:"c"`
}
