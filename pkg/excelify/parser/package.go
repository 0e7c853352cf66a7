// Package parser reads spreadsheet packages back: the part manifest and
// cross references with archive/zip and encoding/xml, and cell values
// through excelize.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
)

// ErrPartNotFound indicates a part named by the package is not in the archive.
var ErrPartNotFound = errors.New("part not found")

// ErrInconsistentPackage indicates the parts of a package disagree with each
// other, e.g. a sheet whose relationship id has no target.
var ErrInconsistentPackage = errors.New("inconsistent package")

const (
	contentTypeWorkbook  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	contentTypeWorksheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
)

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// SheetEntry is a sheet listed in xl/workbook.xml, resolved to its part.
type SheetEntry struct {
	Name    string
	SheetID int
	RelID   string
	// Part is the archive path, empty when the relationship is missing.
	Part string
}

// Manifest describes how the parts of a package reference each other.
type Manifest struct {
	// Parts lists archive entries in stored order.
	Parts []string
	// Defaults maps extension to content type.
	Defaults map[string]string
	// Overrides maps absolute part name (e.g. /xl/workbook.xml) to content type.
	Overrides map[string]string
	// RootRels are the package-level relationships from _rels/.rels.
	RootRels []Relationship
	// WorkbookRels are the relationships from xl/_rels/workbook.xml.rels.
	WorkbookRels []Relationship
	// Sheets lists sheets in workbook order.
	Sheets []SheetEntry
}

// ReadManifest opens the package at path and reads its manifest.
func ReadManifest(xlsxPath string) (*Manifest, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return readManifest(&r.Reader)
}

// ReadManifestBytes reads the manifest of an in-memory package.
func ReadManifestBytes(data []byte) (*Manifest, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return readManifest(r)
}

func readManifest(r *zip.Reader) (*Manifest, error) {
	m := &Manifest{
		Defaults:  make(map[string]string),
		Overrides: make(map[string]string),
	}
	for _, f := range r.File {
		m.Parts = append(m.Parts, f.Name)
	}

	contentTypesXML, err := readZipFile(r, "[Content_Types].xml")
	if err != nil {
		return nil, err
	}
	if err := parseContentTypes(contentTypesXML, m); err != nil {
		return nil, err
	}

	rootRelsXML, err := readZipFile(r, "_rels/.rels")
	if err != nil {
		return nil, err
	}
	if m.RootRels, err = parseRelationships(rootRelsXML); err != nil {
		return nil, err
	}

	workbookPath := m.workbookPath()
	workbookXML, err := readZipFile(r, workbookPath)
	if err != nil {
		return nil, err
	}
	if m.Sheets, err = parseWorkbookSheets(workbookXML); err != nil {
		return nil, err
	}

	wbRelsXML, err := readZipFile(r, relsPathFor(workbookPath))
	if err != nil {
		return nil, err
	}
	if m.WorkbookRels, err = parseRelationships(wbRelsXML); err != nil {
		return nil, err
	}

	baseDir := path.Dir(workbookPath)
	for i, sheet := range m.Sheets {
		for _, rel := range m.WorkbookRels {
			if rel.ID == sheet.RelID && strings.Contains(strings.ToLower(rel.Type), "worksheet") {
				m.Sheets[i].Part = resolveRelativePath(rel.Target, baseDir)
				break
			}
		}
	}

	return m, nil
}

// Validate checks that the parts agree: content types cover the workbook and
// every worksheet, relationship ids and sheet ids are unique, and every sheet
// resolves to a part present in the archive.
func (m *Manifest) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInconsistentPackage, fmt.Sprintf(format, args...)))
	}

	for _, ext := range []string{"rels", "xml"} {
		if _, ok := m.Defaults[ext]; !ok {
			fail("no default content type for %q", ext)
		}
	}

	workbookPath := m.workbookPath()
	if !m.hasPart(workbookPath) {
		fail("workbook part %s missing", workbookPath)
	}
	if m.Overrides["/"+workbookPath] != contentTypeWorkbook {
		fail("workbook part %s has no workbook content type", workbookPath)
	}

	relIDs := make(map[string]bool)
	for _, rel := range m.WorkbookRels {
		if relIDs[rel.ID] {
			fail("duplicate relationship id %s", rel.ID)
		}
		relIDs[rel.ID] = true
	}

	sheetIDs := make(map[int]bool)
	for _, sheet := range m.Sheets {
		if sheetIDs[sheet.SheetID] {
			fail("duplicate sheetId %d", sheet.SheetID)
		}
		sheetIDs[sheet.SheetID] = true

		if sheet.Part == "" {
			fail("sheet %q: relationship %s has no worksheet target", sheet.Name, sheet.RelID)
			continue
		}
		if !m.hasPart(sheet.Part) {
			fail("sheet %q: part %s missing", sheet.Name, sheet.Part)
		}
		if m.Overrides["/"+sheet.Part] != contentTypeWorksheet {
			fail("sheet %q: part %s has no worksheet content type", sheet.Name, sheet.Part)
		}
	}

	return errors.Join(errs...)
}

func (m *Manifest) workbookPath() string {
	for _, rel := range m.RootRels {
		if strings.HasSuffix(rel.Type, "/officeDocument") {
			return strings.TrimPrefix(rel.Target, "/")
		}
	}
	return "xl/workbook.xml"
}

func (m *Manifest) hasPart(name string) bool {
	for _, p := range m.Parts {
		if p == name {
			return true
		}
	}
	return false
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
}

// relsPathFor returns the relationships part of a part, e.g.
// xl/workbook.xml -> xl/_rels/workbook.xml.rels.
func relsPathFor(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

func parseContentTypes(data []byte, m *Manifest) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "Default":
			m.Defaults[attrValue(se, "Extension")] = attrValue(se, "ContentType")
		case "Override":
			m.Overrides[attrValue(se, "PartName")] = attrValue(se, "ContentType")
		}
	}
}

func parseRelationships(data []byte) ([]Relationship, error) {
	var rels []Relationship
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return rels, nil
		}
		if err != nil {
			return nil, err
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rels = append(rels, Relationship{
				ID:     attrValue(se, "Id"),
				Type:   attrValue(se, "Type"),
				Target: attrValue(se, "Target"),
			})
		}
	}
}

func parseWorkbookSheets(data []byte) ([]SheetEntry, error) {
	var sheets []SheetEntry
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return sheets, nil
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var entry SheetEntry
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "name":
				entry.Name = attr.Value
			case "sheetId":
				entry.SheetID, _ = strconv.Atoi(attr.Value)
			case "id":
				entry.RelID = attr.Value
			}
		}
		sheets = append(sheets, entry)
	}
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
