package sema

import (
	"fmt"

	"github.com/gongahkia/yuho/internal/ast"
)

// CheckReachability ports original_source/src/yuho/ast/reachability.py's
// algorithm: test each arm's pattern for usefulness against the matrix of
// the *preceding unguarded* arms only. Guarded arms never contribute
// coverage, since whether they fire also depends on the guard
// expression's runtime value. An arm found not useful is unreachable —
// every value it could match is already claimed by an earlier arm.
func CheckReachability(m *ast.Module) []Diagnostic {
	var diags []Diagnostic
	walkMatches(m, func(match *ast.Match) {
		for _, idx := range UnreachableArmIndices(match) {
			diags = append(diags, warningAt(match.Arms[idx].NodeSpan(),
				fmt.Sprintf("match arm #%d is unreachable; covered by earlier patterns", idx+1)))
		}
	})
	return diags
}

// UnreachableArmIndices returns, for a single match expression, the
// 0-based indices of arms whose pattern is not useful against the
// preceding unguarded arms. internal/optimize's dead-code eliminator
// calls this directly to decide which arms to drop, rather than
// re-deriving the same algorithm from diagnostic text.
func UnreachableArmIndices(match *ast.Match) []int {
	var unreachable []int
	var preceding []AbstractPattern
	for i, arm := range match.Arms {
		pattern := ExtractPattern(arm.Pattern, arm.Guard != nil)
		matrix := NewMatrixFromPatterns(preceding)
		if !Useful(matrix, pattern) {
			unreachable = append(unreachable, i)
		}
		if arm.Guard == nil {
			preceding = append(preceding, pattern)
		}
	}
	return unreachable
}
