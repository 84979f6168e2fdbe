package sema

import (
	"fmt"

	"github.com/gongahkia/yuho/internal/ast"
)

// CheckOverlap ports original_source/src/yuho/ast/overlap.py's algorithm:
// for every pair of arms where neither pattern covers the other (a
// covering pair is reachability's concern, not overlap's), flag the pair
// as overlapping when patternsOverlap holds. Overlap is reported as a
// warning — spec.md §4.7 treats it "as an ambiguity smell rather than an
// error" in the legal domain, where two clauses both plausibly applying
// is worth a human's attention but not necessarily a defect.
func CheckOverlap(m *ast.Module) []Diagnostic {
	var diags []Diagnostic
	walkMatches(m, func(match *ast.Match) {
		patterns := make([]AbstractPattern, len(match.Arms))
		for i, arm := range match.Arms {
			patterns[i] = ExtractPattern(arm.Pattern, arm.Guard != nil)
		}
		for i := 0; i < len(patterns); i++ {
			for j := i + 1; j < len(patterns); j++ {
				a, b := patterns[i], patterns[j]
				if a.Covers(b) || b.Covers(a) {
					continue
				}
				if patternsOverlap(a, b) {
					diags = append(diags, warningAt(match.Arms[j].NodeSpan(),
						fmt.Sprintf("match arm #%d overlaps with arm #%d: %s", j+1, i+1, describeOverlap(a, b))))
				}
			}
		}
	})
	return diags
}

// patternsOverlap reports whether some value exists that both a and b
// would match, without either being strictly more general than the
// other. Wildcards and guarded patterns conservatively always overlap,
// since a guard's runtime outcome is unknown at analysis time.
func patternsOverlap(a, b AbstractPattern) bool {
	if a.HasGuard || b.HasGuard {
		return true
	}
	if a.IsWildcard() || b.IsWildcard() {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case PatternLiteral:
		return a.Value == b.Value
	case PatternStruct:
		if a.Value != b.Value || len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !patternsOverlap(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func describeOverlap(a, b AbstractPattern) string {
	if a.HasGuard || b.HasGuard {
		return "one or both arms carry a guard whose outcome cannot be ruled out ahead of time"
	}
	if a.IsWildcard() || b.IsWildcard() {
		return "a catch-all pattern overlaps any other case"
	}
	if a.Kind == PatternStruct {
		return fmt.Sprintf("both destructure %s with overlapping field patterns", a.Value)
	}
	return fmt.Sprintf("both match the literal %s", a.Value)
}
