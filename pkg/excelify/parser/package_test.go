package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

type zipEntry struct {
	name    string
	content string
}

func buildZip(t *testing.T, entries []zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			t.Fatalf("create %s: %v", e.name, err)
		}
		if _, err := w.Write([]byte(e.content)); err != nil {
			t.Fatalf("write %s: %v", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const (
	testContentTypes = `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>` +
		`<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>` +
		`</Types>`
	testRootRels = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>` +
		`</Relationships>`
	testWorkbook = `<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<sheets><sheet name="Data" sheetId="1" r:id="rId1"/></sheets></workbook>`
	testWorkbookRels = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>` +
		`</Relationships>`
	testSheet = `<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData/></worksheet>`
)

func validEntries() []zipEntry {
	return []zipEntry{
		{"[Content_Types].xml", testContentTypes},
		{"_rels/.rels", testRootRels},
		{"xl/workbook.xml", testWorkbook},
		{"xl/_rels/workbook.xml.rels", testWorkbookRels},
		{"xl/worksheets/sheet1.xml", testSheet},
	}
}

func TestReadManifestBytes(t *testing.T) {
	m, err := ReadManifestBytes(buildZip(t, validEntries()))
	if err != nil {
		t.Fatalf("ReadManifestBytes failed: %v", err)
	}

	if len(m.Parts) != 5 || m.Parts[0] != "[Content_Types].xml" {
		t.Errorf("Unexpected parts %v", m.Parts)
	}
	if m.Defaults["rels"] == "" || m.Defaults["xml"] != "application/xml" {
		t.Errorf("Unexpected defaults %v", m.Defaults)
	}
	if len(m.RootRels) != 1 || m.RootRels[0].Target != "xl/workbook.xml" {
		t.Errorf("Unexpected root rels %+v", m.RootRels)
	}
	if len(m.Sheets) != 1 {
		t.Fatalf("Expected 1 sheet, got %d", len(m.Sheets))
	}
	want := SheetEntry{Name: "Data", SheetID: 1, RelID: "rId1", Part: "xl/worksheets/sheet1.xml"}
	if m.Sheets[0] != want {
		t.Errorf("Sheet = %+v, want %+v", m.Sheets[0], want)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestReadManifestMissingPart(t *testing.T) {
	entries := validEntries()
	entries = append(entries[:2], entries[3:]...) // drop xl/workbook.xml

	_, err := ReadManifestBytes(buildZip(t, entries))
	if !errors.Is(err, ErrPartNotFound) {
		t.Errorf("Expected ErrPartNotFound, got %v", err)
	}
}

func TestReadManifestNotZip(t *testing.T) {
	if _, err := ReadManifestBytes([]byte("not a zip")); err == nil {
		t.Error("Expected error for non-zip input")
	}
}

func TestValidateInconsistent(t *testing.T) {
	tests := []struct {
		name    string
		replace func(entries []zipEntry) []zipEntry
		message string
	}{
		{
			name: "dangling relationship id",
			replace: func(entries []zipEntry) []zipEntry {
				entries[2].content = strings.Replace(testWorkbook, `r:id="rId1"`, `r:id="rId9"`, 1)
				return entries
			},
			message: "has no worksheet target",
		},
		{
			name: "missing worksheet part",
			replace: func(entries []zipEntry) []zipEntry {
				return entries[:4]
			},
			message: "part xl/worksheets/sheet1.xml missing",
		},
		{
			name: "missing worksheet override",
			replace: func(entries []zipEntry) []zipEntry {
				entries[0].content = strings.Replace(testContentTypes, "/xl/worksheets/sheet1.xml", "/xl/worksheets/other.xml", 1)
				return entries
			},
			message: "has no worksheet content type",
		},
		{
			name: "duplicate sheet id",
			replace: func(entries []zipEntry) []zipEntry {
				entries[2].content = strings.Replace(testWorkbook, `</sheets>`, `<sheet name="Copy" sheetId="1" r:id="rId1"/></sheets>`, 1)
				return entries
			},
			message: "duplicate sheetId 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ReadManifestBytes(buildZip(t, tt.replace(validEntries())))
			if err != nil {
				t.Fatalf("ReadManifestBytes failed: %v", err)
			}
			err = m.Validate()
			if !errors.Is(err, ErrInconsistentPackage) {
				t.Fatalf("Expected ErrInconsistentPackage, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Error %q does not mention %q", err, tt.message)
			}
		})
	}
}

func TestReadManifestExcelizeFile(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Second"); err != nil {
		t.Fatal(err)
	}

	tmpFile := filepath.Join(t.TempDir(), "excelize.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	m, err := ReadManifest(tmpFile)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}
	if len(m.Sheets) != 2 || m.Sheets[0].Name != "Sheet1" || m.Sheets[1].Name != "Second" {
		t.Fatalf("Unexpected sheets %+v", m.Sheets)
	}
	for _, s := range m.Sheets {
		if s.Part == "" {
			t.Errorf("Sheet %q not resolved to a part", s.Name)
		}
	}
}

func TestRelsPathFor(t *testing.T) {
	if got := relsPathFor("xl/workbook.xml"); got != "xl/_rels/workbook.xml.rels" {
		t.Errorf("relsPathFor() = %q", got)
	}
	if got := resolveRelativePath("../media/a.png", "xl/drawings"); got != "xl/media/a.png" {
		t.Errorf("resolveRelativePath() = %q", got)
	}
	if got := resolveRelativePath("/xl/worksheets/sheet1.xml", "xl"); got != "xl/worksheets/sheet1.xml" {
		t.Errorf("resolveRelativePath() = %q", got)
	}
}
