package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell data from a sheet through excelize.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]any)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cellMap[models.ColumnLetter(uint32(colIdx))] = parseValue(cellValue, cellType)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{R: rowNum, C: cellMap})
		}
	}

	return result, nil
}

// parseValue converts a formatted excelize value back to float64, bool or
// string according to the stored cell type.
func parseValue(s string, cellType excelize.CellType) any {
	switch cellType {
	case excelize.CellTypeBool:
		return s == "TRUE"
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// xlsxCell is the subset of a <c> element needed to recover its value.
type xlsxCell struct {
	R  string `xml:"r,attr"`
	T  string `xml:"t,attr"`
	V  string `xml:"v"`
	IS *struct {
		T string `xml:"t"`
	} `xml:"is"`
}

// DecodeSheetCells reads the cells of a worksheet part directly. Unlike
// ExtractCells it addresses the sheet by part path, so it also works when
// several sheets share a name. Like ExtractCells it skips cells whose text is
// empty and rows left without cells.
func DecodeSheetCells(r *zip.Reader, part string) ([]models.CellRow, error) {
	data, err := readZipFile(r, part)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nonEmptyRows(result), nil
		}
		if err != nil {
			return nil, err
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "row":
			rowNum, _ := strconv.Atoi(attrValue(se, "r"))
			result = append(result, models.CellRow{R: rowNum, C: make(map[string]any)})
		case "c":
			var c xlsxCell
			if err := decoder.DecodeElement(&c, &se); err != nil {
				return nil, err
			}
			if len(result) == 0 {
				continue
			}
			_, col, err := models.ParseCellReference(c.R)
			if err != nil {
				return nil, err
			}
			v := decodedValue(c)
			if s, ok := v.(string); ok && s == "" {
				continue
			}
			result[len(result)-1].C[models.ColumnLetter(col)] = v
		}
	}
}

func decodedValue(c xlsxCell) any {
	switch c.T {
	case "b":
		return c.V == "1"
	case "inlineStr":
		if c.IS != nil {
			return c.IS.T
		}
		return ""
	case "", "n":
		if f, err := strconv.ParseFloat(c.V, 64); err == nil {
			return f
		}
	}
	return c.V
}

func nonEmptyRows(rows []models.CellRow) []models.CellRow {
	out := rows[:0]
	for _, row := range rows {
		if len(row.C) > 0 {
			out = append(out, row)
		}
	}
	return out
}
