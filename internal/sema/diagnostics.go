package sema

import "github.com/gongahkia/yuho/internal/span"

// Severity distinguishes a hard type/exhaustiveness error from an
// advisory warning (unreachable arm, pattern overlap), per spec.md §7's
// "type errors carry a severity of error or warning."
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is the common shape produced by the checker, exhaustiveness,
// reachability, and overlap passes, later flattened into
// internal/analysis's AnalysisError alongside parse and build errors.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     span.Span
	Hint     string
}

func errorAt(sp span.Span, message string) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: message, Span: sp}
}

func errorWithHint(sp span.Span, message, hint string) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: message, Span: sp, Hint: hint}
}

func warningAt(sp span.Span, message string) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: message, Span: sp}
}
