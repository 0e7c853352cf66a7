package ooxml

import "fmt"

// Op identifies the assembly stage that failed.
type Op uint8

const (
	// OpEncode is the XML encoding of a part.
	OpEncode Op = iota + 1
	// OpArchive is writing an entry into, or finishing, the zip container.
	OpArchive
)

func (o Op) String() string {
	switch o {
	case OpEncode:
		return "encode"
	case OpArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// PartError represents a failure while building or storing one part.
type PartError struct {
	Part string // empty when finishing the archive
	Op   Op
	Err  error
}

func (e *PartError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Part, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}
