// Package span defines source location tracking shared by every stage of
// the compiler pipeline: the lexer, parser, AST builder, and every
// diagnostic emitted downstream of them.
package span

import "fmt"

// Span is a pure data structure with no behavior of its own beyond simple
// composition helpers below; following the teacher's convention (see
// internal/core/contracts.go in termfx-morfx) location types carry no
// methods that reach outside their own fields.
//
// Lines and columns are 1-indexed for display; byte offsets are 0-indexed
// and index into the original UTF-8 source buffer.
type Span struct {
	File      string `json:"file"`
	StartLine int    `json:"line"`
	StartCol  int    `json:"col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
	StartByte int    `json:"start_byte"`
	EndByte   int    `json:"end_byte"`
}

// Zero reports whether s is the unset Span value.
func (s Span) Zero() bool {
	return s == Span{}
}

// String renders a span as file:line:col for diagnostic messages.
func (s Span) String() string {
	if s.Zero() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.StartLine, s.StartCol)
}

// Merge returns the smallest span covering both a and b. If either span is
// zero-valued, the other is returned unchanged.
func Merge(a, b Span) Span {
	if a.Zero() {
		return b
	}
	if b.Zero() {
		return a
	}
	merged := a
	if b.StartByte < a.StartByte {
		merged.StartLine, merged.StartCol, merged.StartByte = b.StartLine, b.StartCol, b.StartByte
	}
	if b.EndByte > a.EndByte {
		merged.EndLine, merged.EndCol, merged.EndByte = b.EndLine, b.EndCol, b.EndByte
	}
	return merged
}

// Contains reports whether inner lies entirely within outer's byte range.
func Contains(outer, inner Span) bool {
	if outer.Zero() || inner.Zero() {
		return false
	}
	return outer.StartByte <= inner.StartByte && inner.EndByte <= outer.EndByte
}
