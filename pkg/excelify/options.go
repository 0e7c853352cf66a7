// Package excelify builds in-memory workbooks and saves them as minimal
// SpreadsheetML (.xlsx) packages.
package excelify

import (
	"compress/flate"

	"github.com/ukaji3/excelify-go/pkg/excelify/ooxml"
)

// SaveOptions configures how a workbook is written.
type SaveOptions struct {
	// CompressionLevel is the deflate level for every archive entry, from
	// flate.NoCompression (0) to flate.BestCompression (9). Out of range
	// values fall back to the default.
	CompressionLevel int
}

// DefaultSaveOptions returns default save options.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{
		CompressionLevel: ooxml.DefaultCompressionLevel,
	}
}

// EffectiveCompressionLevel returns the level that will actually be used.
func (o SaveOptions) EffectiveCompressionLevel() int {
	if o.CompressionLevel < flate.NoCompression || o.CompressionLevel > flate.BestCompression {
		return ooxml.DefaultCompressionLevel
	}
	return o.CompressionLevel
}

// InspectOptions configures reading a package back.
type InspectOptions struct {
	// Sheets restricts the result to the named sheets. Empty means all.
	Sheets []string
	// IncludeRows specifies whether cell rows are read.
	// If nil, defaults to true.
	IncludeRows *bool
}

// DefaultInspectOptions returns default inspect options.
func DefaultInspectOptions() InspectOptions {
	return InspectOptions{}
}

// ShouldIncludeRows returns whether to read cell rows.
func (o InspectOptions) ShouldIncludeRows() bool {
	if o.IncludeRows != nil {
		return *o.IncludeRows
	}
	return true
}

// ShouldIncludeSheet returns whether the named sheet is selected.
func (o InspectOptions) ShouldIncludeSheet(name string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	for _, s := range o.Sheets {
		if s == name {
			return true
		}
	}
	return false
}
