package excelify

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind uint8

const (
	// KindSheetNotFound means a sheet index was out of range.
	KindSheetNotFound Kind = iota + 1
	// KindIO wraps a filesystem or destination writer failure during save.
	KindIO
	// KindArchive wraps a zip container failure.
	KindArchive
	// KindXML wraps an XML encoding failure.
	KindXML
	// KindInvalidCellReference means a reference string could not be parsed.
	KindInvalidCellReference
	// KindConcurrentAccess means the workbook was in use by a conflicting call.
	KindConcurrentAccess
)

// Sentinels for errors.Is, one per Kind.
var (
	ErrSheetNotFound        = errors.New("sheet not found")
	ErrIO                   = errors.New("io error")
	ErrArchive              = errors.New("zip error")
	ErrXML                  = errors.New("xml error")
	ErrInvalidCellReference = errors.New("invalid cell reference")
	ErrConcurrentAccess     = errors.New("workbook is in use by a conflicting call")
)

func (k Kind) sentinel() error {
	switch k {
	case KindSheetNotFound:
		return ErrSheetNotFound
	case KindIO:
		return ErrIO
	case KindArchive:
		return ErrArchive
	case KindXML:
		return ErrXML
	case KindInvalidCellReference:
		return ErrInvalidCellReference
	case KindConcurrentAccess:
		return ErrConcurrentAccess
	default:
		return nil
	}
}

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown error"
}

// Error is the error type returned by Workbook operations. Err, when set, is
// the underlying cause and is returned unchanged by Unwrap.
type Error struct {
	Kind  Kind
	Index int    // sheet index, for KindSheetNotFound
	Ref   string // offending reference, for KindInvalidCellReference
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindSheetNotFound:
		return fmt.Sprintf("sheet not found at index %d", e.Index)
	case KindInvalidCellReference:
		return fmt.Sprintf("invalid cell reference: %q", e.Ref)
	}
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func sheetNotFound(index int) *Error {
	return &Error{Kind: KindSheetNotFound, Index: index}
}

func concurrentAccess() *Error {
	return &Error{Kind: KindConcurrentAccess}
}

// InspectError represents an error while reading one sheet back.
type InspectError struct {
	SheetName string
	Part      string
	Err       error
}

func (e *InspectError) Error() string {
	return fmt.Sprintf("inspect error in sheet %q (%s): %v", e.SheetName, e.Part, e.Err)
}

func (e *InspectError) Unwrap() error {
	return e.Err
}
