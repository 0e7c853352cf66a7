package models

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Parts lists the archive entries in stored order.
	Parts []string `json:"parts"`
	// Sheets lists sheets in workbook order. Names may repeat.
	Sheets []SheetData `json:"sheets"`
}
