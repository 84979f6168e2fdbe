package sema

import "github.com/gongahkia/yuho/internal/ast"

// Analyze runs every semantic pass over m and returns its combined
// diagnostics in the fixed stage order spec.md §4.11 describes for
// SemanticSummary: type checking first (it produces the
// TypeInferenceResult exhaustiveness needs for scrutinee typing), then
// exhaustiveness, then reachability, then overlap. Each pass's own
// diagnostics stay in the source order they were discovered in.
func Analyze(m *ast.Module) (*TypeInferenceResult, []Diagnostic) {
	result, diags := NewChecker(m).Check()
	diags = append(diags, CheckExhaustiveness(m, result)...)
	diags = append(diags, CheckReachability(m)...)
	diags = append(diags, CheckOverlap(m)...)
	return result, diags
}
