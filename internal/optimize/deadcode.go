package optimize

import (
	"github.com/gongahkia/yuho/internal/ast"
	"github.com/gongahkia/yuho/internal/sema"
)

// EliminationStats counts what DeadCodeEliminator removed, mirroring
// original_source/src/yuho/ast/dead_code.py's EliminationStats dataclass.
type EliminationStats struct {
	RemovedMatchArms  int
	RemovedTrueGuards int
	SimplifiedMatches int
}

func (s EliminationStats) TotalEliminations() int {
	return s.RemovedMatchArms + s.RemovedTrueGuards + s.SimplifiedMatches
}

// DeadCodeEliminator removes provably unreachable match arms, strips
// guards that fold to a constant TRUE, and collapses a match down to a
// single catch-all arm's body — a direct algorithmic port of
// dead_code.py's DeadCodeEliminator(Transformer). Like ConstantFolder,
// it is a standalone recursive rewriter rather than an ast.Transformer
// implementation, since collapsing a Match into its surviving arm's body
// replaces one expression kind with another, which the Transformer
// interface's same-kind contract cannot express.
//
// dead_code.py folds constants first to maximize detection; this port
// keeps that ordering as an explicit constructor option rather than an
// implicit side effect.
type DeadCodeEliminator struct {
	FoldConstantsFirst bool
	Stats              EliminationStats
}

func NewDeadCodeEliminator(foldConstantsFirst bool) *DeadCodeEliminator {
	return &DeadCodeEliminator{FoldConstantsFirst: foldConstantsFirst}
}

// Eliminate runs the pass over m, optionally running constant folding
// first, and returns the resulting module.
func (d *DeadCodeEliminator) Eliminate(m *ast.Module) *ast.Module {
	if d.FoldConstantsFirst {
		m = NewConstantFolder(false).FoldModule(m)
	}
	changed := false

	vars := make([]*ast.VariableDecl, len(m.Variables))
	for i, v := range m.Variables {
		val := d.eliminateExpr(v.Value)
		if val == v.Value {
			vars[i] = v
			continue
		}
		cp := *v
		cp.Value = val
		vars[i] = &cp
		changed = true
	}
	fns := make([]*ast.FunctionDef, len(m.Functions))
	for i, fn := range m.Functions {
		body := d.eliminateBlock(fn.Body)
		if body == fn.Body {
			fns[i] = fn
			continue
		}
		cp := *fn
		cp.Body = body
		fns[i] = &cp
		changed = true
	}
	statutes := make([]*ast.Statute, len(m.Statutes))
	for i, st := range m.Statutes {
		s := d.eliminateStatute(st)
		statutes[i] = s
		changed = changed || s != st
	}
	if !changed {
		return m
	}
	out := *m
	out.Variables, out.Functions, out.Statutes = vars, fns, statutes
	return &out
}

func (d *DeadCodeEliminator) eliminateStatute(st *ast.Statute) *ast.Statute {
	changed := false
	defs := make([]*ast.DefinitionEntry, len(st.Definitions))
	for i, def := range st.Definitions {
		val := d.eliminateExpr(def.Value)
		if val == def.Value {
			defs[i] = def
			continue
		}
		cp := *def
		cp.Value = val
		defs[i] = &cp
		changed = true
	}
	elems := make([]*ast.Element, len(st.Elements))
	for i, e := range st.Elements {
		desc := d.eliminateExpr(e.Description)
		if desc == e.Description {
			elems[i] = e
			continue
		}
		cp := *e
		cp.Description = desc
		elems[i] = &cp
		changed = true
	}
	if !changed {
		return st
	}
	out := *st
	out.Definitions, out.Elements = defs, elems
	return &out
}

func (d *DeadCodeEliminator) eliminateBlock(b *ast.Block) *ast.Block {
	if b == nil {
		return nil
	}
	stmts := make([]ast.Stmt, len(b.Stmts))
	changed := false
	for i, s := range b.Stmts {
		stmts[i] = d.eliminateStmt(s)
		changed = changed || stmts[i] != s
	}
	if !changed {
		return b
	}
	out := *b
	out.Stmts = stmts
	return &out
}

func (d *DeadCodeEliminator) eliminateStmt(s ast.Stmt) ast.Stmt {
	switch st := s.(type) {
	case *ast.VariableDecl:
		val := d.eliminateExpr(st.Value)
		if val == st.Value {
			return st
		}
		out := *st
		out.Value = val
		return &out
	case *ast.Assignment:
		target := d.eliminateExpr(st.Target)
		val := d.eliminateExpr(st.Value)
		if target == st.Target && val == st.Value {
			return st
		}
		out := *st
		out.Target, out.Value = target, val
		return &out
	case *ast.Return:
		val := d.eliminateExpr(st.Value)
		if val == st.Value {
			return st
		}
		out := *st
		out.Value = val
		return &out
	case *ast.ExpressionStmt:
		val := d.eliminateExpr(st.Value)
		if val == st.Value {
			return st
		}
		out := *st
		out.Value = val
		return &out
	case *ast.Block:
		return d.eliminateBlock(st)
	default:
		return s
	}
}

// eliminateExpr recurses into every expression shape that can carry a
// match, then applies eliminateMatch to any *ast.Match it finds.
func (d *DeadCodeEliminator) eliminateExpr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *ast.Match:
		return d.eliminateMatch(n)
	case *ast.Binary:
		left := d.eliminateExpr(n.Left)
		right := d.eliminateExpr(n.Right)
		if left == n.Left && right == n.Right {
			return n
		}
		cp := *n
		cp.Left, cp.Right = left, right
		return &cp
	case *ast.Unary:
		operand := d.eliminateExpr(n.Operand)
		if operand == n.Operand {
			return n
		}
		cp := *n
		cp.Operand = operand
		return &cp
	case *ast.FieldAccess:
		target := d.eliminateExpr(n.Target)
		if target == n.Target {
			return n
		}
		cp := *n
		cp.Target = target
		return &cp
	case *ast.IndexAccess:
		target := d.eliminateExpr(n.Target)
		idx := d.eliminateExpr(n.Index)
		if target == n.Target && idx == n.Index {
			return n
		}
		cp := *n
		cp.Target, cp.Index = target, idx
		return &cp
	case *ast.Call:
		callee := d.eliminateExpr(n.Callee)
		changed := callee != n.Callee
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = d.eliminateExpr(a)
			changed = changed || args[i] != a
		}
		if !changed {
			return n
		}
		cp := *n
		cp.Callee, cp.Args = callee, args
		return &cp
	case *ast.StructLiteral:
		changed := false
		fields := make([]*ast.FieldAssignment, len(n.Fields))
		for i, fld := range n.Fields {
			val := d.eliminateExpr(fld.Value)
			if val == fld.Value {
				fields[i] = fld
				continue
			}
			fcp := *fld
			fcp.Value = val
			fields[i] = &fcp
			changed = true
		}
		if !changed {
			return n
		}
		cp := *n
		cp.Fields = fields
		return &cp
	default:
		return e
	}
}

// eliminateMatch is dead_code.py's transform_match_expr: recurse into
// arm bodies/guards first, drop unreachable arms, simplify an
// always-true guard, and collapse to a lone catch-all arm's body.
func (d *DeadCodeEliminator) eliminateMatch(n *ast.Match) ast.Expr {
	scrutinee := d.eliminateExpr(n.Scrutinee)
	arms := make([]*ast.MatchArm, len(n.Arms))
	for i, a := range n.Arms {
		guard := d.eliminateExpr(a.Guard)
		body := d.eliminateExpr(a.Body)
		if guard == a.Guard && body == a.Body {
			arms[i] = a
			continue
		}
		cp := *a
		cp.Guard, cp.Body = guard, body
		arms[i] = &cp
	}
	recursed := &ast.Match{}
	*recursed = *n
	recursed.Scrutinee, recursed.Arms = scrutinee, arms

	unreachable := map[int]bool{}
	for _, idx := range sema.UnreachableArmIndices(recursed) {
		unreachable[idx] = true
	}

	var kept []*ast.MatchArm
	for i, a := range recursed.Arms {
		if unreachable[i] {
			d.Stats.RemovedMatchArms++
			continue
		}
		kept = append(kept, d.simplifyArmGuard(a))
	}
	if len(kept) == 0 {
		return recursed
	}
	if len(kept) == 1 && isCatchAllArm(kept[0]) {
		d.Stats.SimplifiedMatches++
		return kept[0].Body
	}
	if len(kept) != len(n.Arms) {
		out := *recursed
		out.Arms = kept
		return &out
	}
	return recursed
}

// simplifyArmGuard strips a guard that folds to constant TRUE, since an
// always-true guard is equivalent to no guard at all.
func (d *DeadCodeEliminator) simplifyArmGuard(arm *ast.MatchArm) *ast.MatchArm {
	if arm.Guard == nil {
		return arm
	}
	folded := NewConstantFolder(false).foldExpr(arm.Guard)
	if lit, ok := folded.(*ast.BoolLit); ok && lit.Value {
		d.Stats.RemovedTrueGuards++
		out := *arm
		out.Guard = nil
		return &out
	}
	return arm
}

func isCatchAllArm(arm *ast.MatchArm) bool {
	if arm.Guard != nil {
		return false
	}
	switch arm.Pattern.(type) {
	case *ast.WildcardPattern, *ast.BindingPattern:
		return true
	default:
		return false
	}
}
