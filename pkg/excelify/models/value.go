package models

import (
	"errors"
	"fmt"
	"strconv"
)

// CellType identifies which variant a CellValue holds.
type CellType uint8

const (
	// CellTypeEmpty is an occupied slot with no renderable content.
	CellTypeEmpty CellType = iota
	// CellTypeString holds text, serialized as an inline string.
	CellTypeString
	// CellTypeNumber holds a float64, serialized as a plain numeric cell.
	CellTypeNumber
	// CellTypeBoolean holds a bool, serialized as 1 or 0.
	CellTypeBoolean
)

func (t CellType) String() string {
	switch t {
	case CellTypeString:
		return "string"
	case CellTypeNumber:
		return "number"
	case CellTypeBoolean:
		return "boolean"
	default:
		return "empty"
	}
}

// Cell type attribute values written to the t attribute of a <c> element.
const (
	TypeHintInlineString = "inlineStr"
	TypeHintBoolean      = "b"
)

// ErrUnsupportedValue is returned by ValueOf for Go values that have no
// cell representation.
var ErrUnsupportedValue = errors.New("unsupported cell value")

// CellValue is the content of one cell. The zero value is Empty.
type CellValue struct {
	typ     CellType
	text    string
	number  float64
	boolean bool
}

// StringValue returns a String cell value.
func StringValue(s string) CellValue {
	return CellValue{typ: CellTypeString, text: s}
}

// NumberValue returns a Number cell value.
func NumberValue(n float64) CellValue {
	return CellValue{typ: CellTypeNumber, number: n}
}

// BooleanValue returns a Boolean cell value.
func BooleanValue(b bool) CellValue {
	return CellValue{typ: CellTypeBoolean, boolean: b}
}

// EmptyValue returns the Empty cell value.
func EmptyValue() CellValue {
	return CellValue{}
}

// ValueOf converts a scalar Go value into a CellValue. Integers of any width
// become numbers and nil becomes Empty.
func ValueOf(v any) (CellValue, error) {
	switch x := v.(type) {
	case nil:
		return EmptyValue(), nil
	case CellValue:
		return x, nil
	case string:
		return StringValue(x), nil
	case bool:
		return BooleanValue(x), nil
	case float64:
		return NumberValue(x), nil
	case float32:
		return NumberValue(float64(x)), nil
	case int:
		return NumberValue(float64(x)), nil
	case int8:
		return NumberValue(float64(x)), nil
	case int16:
		return NumberValue(float64(x)), nil
	case int32:
		return NumberValue(float64(x)), nil
	case int64:
		return NumberValue(float64(x)), nil
	case uint:
		return NumberValue(float64(x)), nil
	case uint8:
		return NumberValue(float64(x)), nil
	case uint16:
		return NumberValue(float64(x)), nil
	case uint32:
		return NumberValue(float64(x)), nil
	case uint64:
		return NumberValue(float64(x)), nil
	default:
		return EmptyValue(), fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// Type reports the variant held by v.
func (v CellValue) Type() CellType {
	return v.typ
}

// IsEmpty reports whether v is the Empty variant.
func (v CellValue) IsEmpty() bool {
	return v.typ == CellTypeEmpty
}

// AsString returns the text of a String value.
func (v CellValue) AsString() (string, bool) {
	return v.text, v.typ == CellTypeString
}

// AsNumber returns the number of a Number value.
func (v CellValue) AsNumber() (float64, bool) {
	return v.number, v.typ == CellTypeNumber
}

// AsBoolean returns the flag of a Boolean value.
func (v CellValue) AsBoolean() (bool, bool) {
	return v.boolean, v.typ == CellTypeBoolean
}

// Text returns the textual projection used for <v> and inline string content:
// the string itself, the shortest decimal form of a number, "1"/"0" for
// booleans and "" for Empty.
func (v CellValue) Text() string {
	switch v.typ {
	case CellTypeString:
		return v.text
	case CellTypeNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case CellTypeBoolean:
		if v.boolean {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

// TypeHint returns the cell type attribute for v. Numbers and Empty have none.
func (v CellValue) TypeHint() (string, bool) {
	switch v.typ {
	case CellTypeString:
		return TypeHintInlineString, true
	case CellTypeBoolean:
		return TypeHintBoolean, true
	default:
		return "", false
	}
}

func (v CellValue) String() string {
	switch v.typ {
	case CellTypeString:
		return strconv.Quote(v.text)
	case CellTypeBoolean:
		return strconv.FormatBool(v.boolean)
	case CellTypeEmpty:
		return "<empty>"
	default:
		return v.Text()
	}
}
