package wkb

import "fmt"

// InvalidWkbTypeError reports an unrecognized type code in a binary
// buffer (spec §7 ParseError.InvalidWkbType).
type InvalidWkbTypeError struct {
	Code   int
	Offset int
}

func (e *InvalidWkbTypeError) Error() string {
	return fmt.Sprintf("wkb: invalid type code %d at offset %d", e.Code, e.Offset)
}

// TruncatedError reports a buffer that ended before the format said it
// should.
type TruncatedError struct {
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("wkb: truncated buffer at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

// InvariantError reports an internal consistency failure: unknown
// variant, malformed serialized buffer. Indicates a bug in the caller or
// a corrupted buffer; surfaced verbatim per spec §7.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return "wkb: invariant violated: " + e.Reason }
