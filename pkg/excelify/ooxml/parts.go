package ooxml

import "encoding/xml"

// Namespaces used in the package parts.
const (
	NSContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	NSRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	NSSpreadsheetML = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	NSDocumentRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Content and relationship types.
const (
	ContentTypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML           = "application/xml"
	ContentTypeWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ContentTypeWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"

	RelTypeOfficeDocument = NSDocumentRels + "/officeDocument"
	RelTypeWorksheet      = NSDocumentRels + "/worksheet"
)

// Part names.
const (
	PartContentTypes   = "[Content_Types].xml"
	PartRootRels       = "_rels/.rels"
	PartWorkbook       = "xl/workbook.xml"
	PartWorkbookRels   = "xl/_rels/workbook.xml.rels"
	worksheetPartFmt   = "xl/worksheets/sheet%d.xml"
	worksheetTargetFmt = "worksheets/sheet%d.xml"
	relIDFmt           = "rId%d"
)

// xmlHeader is written ahead of every part.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// xlsxTypes directly maps the Types element of [Content_Types].xml.
type xlsxTypes struct {
	XMLName   xml.Name       `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []xlsxDefault  `xml:"Default"`
	Overrides []xlsxOverride `xml:"Override"`
}

type xlsxDefault struct {
	Extension   string `xml:",attr"`
	ContentType string `xml:",attr"`
}

type xlsxOverride struct {
	PartName    string `xml:",attr"`
	ContentType string `xml:",attr"`
}

// xlsxRelationships directly maps the Relationships element of a .rels part.
type xlsxRelationships struct {
	XMLName       xml.Name           `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationships []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:",attr"`
	Target string `xml:",attr"`
}

// xlsxWorkbook directly maps the workbook element. The r prefix is declared
// by hand so sheets carry r:id rather than a generated prefix.
type xlsxWorkbook struct {
	XMLName xml.Name   `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main workbook"`
	XMLNSR  string     `xml:"xmlns:r,attr"`
	Sheets  xlsxSheets `xml:"sheets"`
}

type xlsxSheets struct {
	Sheet []xlsxSheet `xml:"sheet"`
}

type xlsxSheet struct {
	Name    string `xml:"name,attr"`
	SheetID int    `xml:"sheetId,attr"`
	RID     string `xml:"r:id,attr"`
}

// xlsxWorksheet directly maps the worksheet element, limited to sheetData.
type xlsxWorksheet struct {
	XMLName   xml.Name      `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main worksheet"`
	XMLNSR    string        `xml:"xmlns:r,attr"`
	SheetData xlsxSheetData `xml:"sheetData"`
}

type xlsxSheetData struct {
	Row []xlsxRow `xml:"row"`
}

type xlsxRow struct {
	R uint64  `xml:"r,attr"`
	C []xlsxC `xml:"c"`
}

// xlsxC maps a cell. Strings are written inline through IS; numbers and
// booleans through V.
type xlsxC struct {
	R  string  `xml:"r,attr"`
	T  string  `xml:"t,attr,omitempty"`
	V  string  `xml:"v,omitempty"`
	IS *xlsxIS `xml:"is"`
}

type xlsxIS struct {
	T xlsxT `xml:"t"`
}

// xlsxT carries inline text; xml:space="preserve" keeps edge whitespace.
type xlsxT struct {
	Space string `xml:"http://www.w3.org/XML/1998/namespace space,attr,omitempty"`
	Val   string `xml:",chardata"`
}
