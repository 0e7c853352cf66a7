package models

// SheetData represents structured data for a single sheet read back from a
// package.
type SheetData struct {
	// Name is the sheet name as listed in the workbook part.
	Name string `json:"name"`
	// SheetID is the sheetId attribute.
	SheetID int `json:"sheet_id"`
	// RelID is the relationship id (r:id) linking the sheet to its part.
	RelID string `json:"rel_id"`
	// Part is the archive path of the worksheet part.
	Part string `json:"part"`
	// UsedRange is the bounding range of non-empty cells, e.g. "A1:C4".
	UsedRange string `json:"used_range,omitempty"`
	// Rows contains rows with at least one non-empty cell.
	Rows []CellRow `json:"rows,omitempty"`
}
