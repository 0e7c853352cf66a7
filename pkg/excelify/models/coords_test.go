package models

import (
	"errors"
	"math"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		col      uint32
		expected string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
	}

	for _, tt := range tests {
		if got := ColumnLetter(tt.col); got != tt.expected {
			t.Errorf("ColumnLetter(%d) = %q, expected %q", tt.col, got, tt.expected)
		}
	}
}

func TestColumnLetterMatchesExcelize(t *testing.T) {
	for col := uint32(0); col < 16384; col++ {
		want, err := excelize.ColumnNumberToName(int(col) + 1)
		if err != nil {
			t.Fatalf("ColumnNumberToName(%d): %v", col+1, err)
		}
		if got := ColumnLetter(col); got != want {
			t.Fatalf("ColumnLetter(%d) = %q, excelize says %q", col, got, want)
		}
	}
}

func TestColumnLetterInjective(t *testing.T) {
	seen := make(map[string]uint32)
	for col := uint32(0); col < 20000; col++ {
		name := ColumnLetter(col)
		if prev, ok := seen[name]; ok {
			t.Fatalf("ColumnLetter(%d) and ColumnLetter(%d) both produce %q", prev, col, name)
		}
		seen[name] = col
	}
}

func TestColumnLetterLargest(t *testing.T) {
	name := ColumnLetter(math.MaxUint32)
	if name == "" {
		t.Fatal("ColumnLetter(MaxUint32) returned an empty string")
	}
	_, col, err := ParseCellReference(name + "1")
	if err != nil {
		t.Fatalf("ParseCellReference(%q): %v", name+"1", err)
	}
	if col != math.MaxUint32 {
		t.Errorf("round trip of MaxUint32 gave %d", col)
	}
}

func TestCellReference(t *testing.T) {
	tests := []struct {
		row, col uint32
		expected string
	}{
		{0, 0, "A1"},
		{0, 1, "B1"},
		{9, 2, "C10"},
		{0, 26, "AA1"},
		{1048575, 16383, "XFD1048576"},
		{math.MaxUint32, 0, "A4294967296"},
	}

	for _, tt := range tests {
		if got := CellReference(tt.row, tt.col); got != tt.expected {
			t.Errorf("CellReference(%d, %d) = %q, expected %q", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestParseCellReference(t *testing.T) {
	tests := []struct {
		ref      string
		row, col uint32
	}{
		{"A1", 0, 0},
		{"B1", 0, 1},
		{"C10", 9, 2},
		{"AA1", 0, 26},
		{"zz3", 2, 701},
		{"$B$3", 2, 1},
		{" D4 ", 3, 3},
	}

	for _, tt := range tests {
		row, col, err := ParseCellReference(tt.ref)
		if err != nil {
			t.Errorf("ParseCellReference(%q) returned error: %v", tt.ref, err)
			continue
		}
		if row != tt.row || col != tt.col {
			t.Errorf("ParseCellReference(%q) = (%d, %d), expected (%d, %d)", tt.ref, row, col, tt.row, tt.col)
		}
		wantCol, wantRow, err := excelize.CellNameToCoordinates(CellReference(row, col))
		if err != nil || uint32(wantCol-1) != col || uint32(wantRow-1) != row {
			t.Errorf("excelize disagrees on %q: (%d, %d, %v)", tt.ref, wantRow, wantCol, err)
		}
	}
}

func TestParseCellReferenceInvalid(t *testing.T) {
	for _, ref := range []string{"", "1", "A", "A0", "A-1", "1A", "A1B", "$", "A$", "Ä1", "A99999999999"} {
		if _, _, err := ParseCellReference(ref); !errors.Is(err, ErrInvalidCellReference) {
			t.Errorf("ParseCellReference(%q) error = %v, expected ErrInvalidCellReference", ref, err)
		}
	}
}
