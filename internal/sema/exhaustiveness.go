package sema

import (
	"fmt"

	"github.com/gongahkia/yuho/internal/ast"
)

// closedScrutinee reports whether t has a finite, enumerable set of
// values, making exhaustiveness mandatory per spec.md §4.5 ("booleans,
// finite struct variant enumerations"). Everything else only requires
// exhaustiveness when the match node's own EnsureExhaustiveness flag is
// set.
func closedScrutinee(t Type) bool {
	return t == TypeBool
}

// CheckExhaustiveness walks every Match in the module and, for each one
// where exhaustiveness is required (a closed scrutinee type, or an
// explicit ensure_exhaustiveness flag per spec.md §4.5), tests whether
// the unguarded arms cover every value. A non-exhaustive match produces
// one error diagnostic carrying a synthesized witness value.
func CheckExhaustiveness(m *ast.Module, result *TypeInferenceResult) []Diagnostic {
	var diags []Diagnostic
	walkMatches(m, func(match *ast.Match) {
		scrutineeType := result.TypeOf(match.Scrutinee)
		if !match.EnsureExhaustiveness && !closedScrutinee(scrutineeType) {
			return
		}
		var unguarded []AbstractPattern
		for _, arm := range match.Arms {
			if arm.Guard == nil {
				unguarded = append(unguarded, ExtractPattern(arm.Pattern, false))
			}
		}
		if exhaustiveFor(scrutineeType, unguarded) {
			return
		}
		witness := synthesizeWitness(scrutineeType, unguarded)
		diags = append(diags, errorAt(match.NodeSpan(),
			fmt.Sprintf("match is not exhaustive; missing case %s", witness)))
	})
	return diags
}

// exhaustiveFor answers the completeness question CheckExhaustiveness
// actually needs: does the union of unguarded arm patterns cover every
// value of scrutineeType. This is distinct from Useful, which answers a
// per-witness reachability question ("is some single pattern still
// useful against this matrix") and degenerates incorrectly here: a bool
// match with both TRUE and FALSE as literal arms and no wildcard row
// has no row that is itself a wildcard, so a naive Useful(matrix,
// wildcard) call reports the wildcard useful and flags a fully-covered
// match as non-exhaustive. Closed types get a constructor-signature
// completeness check instead; open types (or an explicit
// ensure_exhaustiveness flag with no enumerable domain) still require a
// wildcard, since there is no declared domain to check against.
func exhaustiveFor(scrutineeType Type, unguarded []AbstractPattern) bool {
	for _, p := range unguarded {
		if p.IsWildcard() {
			return true
		}
	}
	if scrutineeType == TypeBool {
		covered := map[string]bool{}
		for _, p := range unguarded {
			if p.Kind == PatternLiteral {
				covered[p.Value] = true
			}
		}
		return covered["TRUE"] && covered["FALSE"]
	}
	return false
}

// synthesizeWitness produces a minimal missing-case description. Boolean
// scrutinees have a closed two-value domain and get an exact witness;
// anything else (struct variant enumerations with no declared domain in
// this port) falls back to a wildcard witness, noted in DESIGN.md as a
// scoped limitation in the absence of exhaustiveness.py's original
// enumeration logic.
func synthesizeWitness(scrutineeType Type, unguarded []AbstractPattern) string {
	if scrutineeType == TypeBool {
		for _, candidate := range []string{"TRUE", "FALSE"} {
			cp := AbstractPattern{Kind: PatternLiteral, Value: candidate}
			if Useful(NewMatrixFromPatterns(unguarded), cp) {
				return candidate
			}
		}
	}
	return "_"
}

// walkMatches visits every Match expression reachable from the module's
// top-level variables, function bodies, and statute definitions/element
// descriptions: all variables first, then all functions, then all
// statutes. Within an expression, matches nested in arms and in the
// scrutinee are visited before the enclosing match.
func walkMatches(m *ast.Module, visit func(*ast.Match)) {
	for _, v := range m.Variables {
		walkExprMatches(v.Value, visit)
	}
	for _, fn := range m.Functions {
		walkBlockMatches(fn.Body, visit)
	}
	for _, st := range m.Statutes {
		for _, d := range st.Definitions {
			walkExprMatches(d.Value, visit)
		}
		for _, e := range st.Elements {
			walkExprMatches(e.Description, visit)
		}
	}
}

func walkBlockMatches(b *ast.Block, visit func(*ast.Match)) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		switch st := s.(type) {
		case *ast.VariableDecl:
			walkExprMatches(st.Value, visit)
		case *ast.Assignment:
			walkExprMatches(st.Target, visit)
			walkExprMatches(st.Value, visit)
		case *ast.Return:
			walkExprMatches(st.Value, visit)
		case *ast.ExpressionStmt:
			walkExprMatches(st.Value, visit)
		case *ast.Block:
			walkBlockMatches(st, visit)
		}
	}
}

func walkExprMatches(e ast.Expr, visit func(*ast.Match)) {
	switch n := e.(type) {
	case nil:
		return
	case *ast.Match:
		for _, arm := range n.Arms {
			walkExprMatches(arm.Guard, visit)
			walkExprMatches(arm.Body, visit)
		}
		walkExprMatches(n.Scrutinee, visit)
		visit(n)
	case *ast.FieldAccess:
		walkExprMatches(n.Target, visit)
	case *ast.IndexAccess:
		walkExprMatches(n.Target, visit)
		walkExprMatches(n.Index, visit)
	case *ast.Call:
		walkExprMatches(n.Callee, visit)
		for _, a := range n.Args {
			walkExprMatches(a, visit)
		}
	case *ast.Binary:
		walkExprMatches(n.Left, visit)
		walkExprMatches(n.Right, visit)
	case *ast.Unary:
		walkExprMatches(n.Operand, visit)
	case *ast.StructLiteral:
		for _, f := range n.Fields {
			walkExprMatches(f.Value, visit)
		}
	}
}
