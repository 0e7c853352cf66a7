package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCellReference indicates a reference string such as "B3" could not
// be parsed into coordinates.
var ErrInvalidCellReference = errors.New("invalid cell reference")

// ColumnLetter returns the column name for a zero-based column index using
// bijective base-26: 0 is "A", 25 is "Z", 26 is "AA", 702 is "AAA".
func ColumnLetter(col uint32) string {
	var buf [8]byte
	i := len(buf)
	// 64-bit so that math.MaxUint32+1 does not wrap to zero.
	for n := uint64(col) + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// CellReference returns the A1-style reference for zero-based coordinates,
// e.g. (9, 2) is "C10".
func CellReference(row, col uint32) string {
	return ColumnLetter(col) + strconv.FormatUint(uint64(row)+1, 10)
}

// ParseCellReference converts an A1-style reference back into zero-based
// (row, col). Lowercase letters and "$" absolute markers are accepted.
func ParseCellReference(ref string) (row, col uint32, err error) {
	s := strings.TrimSpace(ref)
	s = strings.TrimPrefix(s, "$")

	letters := 0
	for letters < len(s) && isASCIILetter(s[letters]) {
		letters++
	}
	if letters == 0 {
		return 0, 0, fmt.Errorf("%w: %q: missing column", ErrInvalidCellReference, ref)
	}
	colPart, rowPart := s[:letters], strings.TrimPrefix(s[letters:], "$")
	if rowPart == "" {
		return 0, 0, fmt.Errorf("%w: %q: missing row", ErrInvalidCellReference, ref)
	}

	var n uint64
	for i := 0; i < len(colPart); i++ {
		n = n*26 + uint64(upper(colPart[i])-'A'+1)
		if n > math.MaxUint32+1 {
			return 0, 0, fmt.Errorf("%w: %q: column out of range", ErrInvalidCellReference, ref)
		}
	}

	for i := 0; i < len(rowPart); i++ {
		if rowPart[i] < '0' || rowPart[i] > '9' {
			return 0, 0, fmt.Errorf("%w: %q: unexpected %q", ErrInvalidCellReference, ref, rowPart[i])
		}
	}
	r, perr := strconv.ParseUint(rowPart, 10, 64)
	if perr != nil || r == 0 || r > math.MaxUint32+1 {
		return 0, 0, fmt.Errorf("%w: %q: row out of range", ErrInvalidCellReference, ref)
	}

	return uint32(r - 1), uint32(n - 1), nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
