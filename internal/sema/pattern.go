package sema

import (
	"strconv"

	"github.com/gongahkia/yuho/internal/ast"
)

// PatternKind is the tagged abstraction spec.md §4.5 reduces every match
// pattern to: "a pattern is abstracted as a tagged value {kind, value,
// children, has_guard}". original_source/src/yuho/ast/exhaustiveness.py,
// the Python module reachability.py and overlap.py both import
// AbstractPattern/PatternMatrix/PatternRow from, is not present in the
// retrieved pack; this file reconstructs that machinery from spec.md's
// prose together with the call shapes visible in reachability.py
// (matrix.specialize(col, pattern), pattern.is_wildcard(),
// pattern.covers(other)) and overlap.py (same constructor, pairwise
// covers()).
type PatternKind string

const (
	PatternWildcard PatternKind = "wildcard"
	PatternLiteral  PatternKind = "literal"
	PatternStruct   PatternKind = "struct"
)

// AbstractPattern is one match-arm pattern reduced to the shape the
// exhaustiveness, reachability, and overlap passes all reason over,
// independent of its concrete ast.Pattern representation.
type AbstractPattern struct {
	Kind     PatternKind
	Value    string // rendered literal value, or struct constructor name
	Children []AbstractPattern
	HasGuard bool
	Source   ast.Pattern
}

func (p AbstractPattern) IsWildcard() bool { return p.Kind == PatternWildcard }

// Covers reports whether every value p matches is also matched by q —
// i.e. p is at least as general as q. A wildcard covers everything;
// nothing but a wildcard covers a wildcard; literals cover only an equal
// literal; a struct pattern covers another only when they share a
// constructor, arity, and every child pairwise covers.
func (p AbstractPattern) Covers(q AbstractPattern) bool {
	if p.IsWildcard() {
		return true
	}
	if q.IsWildcard() {
		return false
	}
	if p.Kind != q.Kind {
		return false
	}
	switch p.Kind {
	case PatternLiteral:
		return p.Value == q.Value
	case PatternStruct:
		if p.Value != q.Value || len(p.Children) != len(q.Children) {
			return false
		}
		for i := range p.Children {
			if !p.Children[i].Covers(q.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// PatternRow is one matrix row: the column sequence contributed by a
// single match arm (length 1 until Specialize splices a struct's
// children in), tagged with the originating arm's index for diagnostics.
type PatternRow struct {
	Patterns []AbstractPattern
	ArmIndex int
}

// PatternMatrix is the pack of rows the usefulness test U(M, p) from
// spec.md §4.5 operates on.
type PatternMatrix struct {
	Rows []PatternRow
}

func (m PatternMatrix) IsEmpty() bool { return len(m.Rows) == 0 }

// NewMatrixFromPatterns builds a one-column matrix, one row per pattern,
// in source order — the starting matrix both reachability (preceding
// unguarded arms) and exhaustiveness (all unguarded arms) build before
// calling Useful.
func NewMatrixFromPatterns(patterns []AbstractPattern) PatternMatrix {
	rows := make([]PatternRow, len(patterns))
	for i, p := range patterns {
		rows[i] = PatternRow{Patterns: []AbstractPattern{p}, ArmIndex: i}
	}
	return PatternMatrix{Rows: rows}
}

// Specialize keeps rows whose first column is ctor's constructor (or a
// wildcard standing in for it), splicing the constructor's children — or,
// for a wildcard row, a matching count of fresh wildcards — onto the
// front of that row's remaining columns. This is spec.md §4.5's
// "specialize M by c".
func (m PatternMatrix) Specialize(ctor AbstractPattern) PatternMatrix {
	var out []PatternRow
	arity := len(ctor.Children)
	for _, row := range m.Rows {
		if len(row.Patterns) == 0 {
			continue
		}
		head, rest := row.Patterns[0], row.Patterns[1:]
		switch {
		case head.IsWildcard():
			fresh := make([]AbstractPattern, arity)
			for i := range fresh {
				fresh[i] = AbstractPattern{Kind: PatternWildcard}
			}
			out = append(out, PatternRow{Patterns: append(fresh, rest...), ArmIndex: row.ArmIndex})
		case head.Kind == ctor.Kind && head.Value == ctor.Value && len(head.Children) == arity:
			spliced := append(append([]AbstractPattern{}, head.Children...), rest...)
			out = append(out, PatternRow{Patterns: spliced, ArmIndex: row.ArmIndex})
		}
	}
	return PatternMatrix{Rows: out}
}

// Useful reports whether p can match some value no row of m already
// matches: spec.md §4.5's U(M, p). An arm's pattern is reachable iff
// Useful(matrixOfPrecedingUnguardedArms, pattern) is true. Exhaustiveness
// is not decided here: for a wildcard p, Useful only checks whether some
// row starts with a wildcard, so CheckExhaustiveness uses exhaustiveFor.
func Useful(m PatternMatrix, p AbstractPattern) bool {
	if m.IsEmpty() {
		return true
	}
	if p.IsWildcard() {
		for _, row := range m.Rows {
			if len(row.Patterns) > 0 && row.Patterns[0].IsWildcard() {
				return false
			}
		}
		return true
	}
	specialized := m.Specialize(p)
	if len(p.Children) == 0 {
		return specialized.IsEmpty()
	}
	if specialized.IsEmpty() {
		return true
	}
	for i, child := range p.Children {
		col := make([]AbstractPattern, 0, len(specialized.Rows))
		for _, row := range specialized.Rows {
			if i < len(row.Patterns) {
				col = append(col, row.Patterns[i])
			}
		}
		if len(col) == 0 {
			return true
		}
		colRows := make([]PatternRow, len(col))
		for j, c := range col {
			colRows[j] = PatternRow{Patterns: []AbstractPattern{c}}
		}
		if !Useful(PatternMatrix{Rows: colRows}, child) {
			return false
		}
	}
	return true
}

// ExtractPattern reduces an ast.Pattern to its AbstractPattern, the role
// original_source/src/yuho/ast/exhaustiveness.py's (missing) PatternExtractor
// plays for reachability.py and overlap.py's callers.
func ExtractPattern(p ast.Pattern, hasGuard bool) AbstractPattern {
	switch pat := p.(type) {
	case *ast.WildcardPattern:
		return AbstractPattern{Kind: PatternWildcard, HasGuard: hasGuard, Source: p}
	case *ast.BindingPattern:
		return AbstractPattern{Kind: PatternWildcard, HasGuard: hasGuard, Source: p}
	case *ast.LiteralPattern:
		return AbstractPattern{Kind: PatternLiteral, Value: renderLiteral(pat.Value), HasGuard: hasGuard, Source: p}
	case *ast.StructPattern:
		children := make([]AbstractPattern, len(pat.Fields))
		for i, f := range pat.Fields {
			children[i] = ExtractPattern(f.Pattern, false)
		}
		return AbstractPattern{Kind: PatternStruct, Value: pat.Constructor, Children: children, HasGuard: hasGuard, Source: p}
	default:
		return AbstractPattern{Kind: PatternWildcard, HasGuard: hasGuard, Source: p}
	}
}

func renderLiteral(e ast.Expr) string {
	switch lit := e.(type) {
	case *ast.IntLit:
		return strconv.FormatInt(lit.Value, 10)
	case *ast.FloatLit:
		return strconv.FormatFloat(lit.Value, 'g', -1, 64)
	case *ast.BoolLit:
		if lit.Value {
			return "TRUE"
		}
		return "FALSE"
	case *ast.StringLit:
		return lit.Value
	default:
		return ""
	}
}
