package parser

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
)

// UsedRange returns the bounding range of the given rows, e.g. "A1:C4", or ""
// when rows is empty.
func UsedRange(rows []models.CellRow) string {
	minRow, maxRow, minCol, maxCol, ok := findDataBounds(rows)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%s",
		models.CellReference(minRow, minCol),
		models.CellReference(maxRow, maxCol))
}

// findDataBounds finds the zero-based bounding box of the cells in rows.
func findDataBounds(rows []models.CellRow) (minRow, maxRow, minCol, maxCol uint32, ok bool) {
	for _, row := range rows {
		for letter := range row.C {
			r, c, err := models.ParseCellReference(letter + strconv.Itoa(row.R))
			if err != nil {
				continue
			}
			if !ok {
				minRow, maxRow, minCol, maxCol, ok = r, r, c, c, true
				continue
			}
			minRow = min(minRow, r)
			maxRow = max(maxRow, r)
			minCol = min(minCol, c)
			maxCol = max(maxCol, c)
		}
	}
	return minRow, maxRow, minCol, maxCol, ok
}
