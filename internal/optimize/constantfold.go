// Package optimize implements the two AST-rewriting passes that run
// after semantic analysis: constant folding and dead-code elimination.
package optimize

import (
	"fmt"

	"github.com/gongahkia/yuho/internal/ast"
	"github.com/gongahkia/yuho/internal/span"
)

// ConstantFoldingError is raised only in strict mode, when an integer
// division by a constant zero is folded at compile time rather than left
// for the runtime to report — mirroring
// original_source/src/yuho/ast/constant_folder.py's
// fold_division_by_zero flag.
type ConstantFoldingError struct {
	Message string
}

func (e *ConstantFoldingError) Error() string { return e.Message }

// ConstantFolder evaluates binary/unary expressions over literal operands
// at compile time, grounded directly on constant_folder.py's
// ConstantFolder(Transformer): transform children first (bottom-up), then
// attempt to fold the resulting node.
//
// internal/ast's Transformer interface deliberately keeps every TransformX
// method same-kind-in, same-kind-out (see transformer.go), which is correct
// for rewrites that never change a node's concrete type but cannot
// express collapsing a Binary into an IntLit. ConstantFolder is therefore
// a standalone recursive rewriter over ast.Expr/ast.Stmt rather than an
// ast.Transformer implementation — the one place in this port where the
// generic visitor/transformer framework doesn't fit the job.
//
// Integer division truncates toward zero per spec.md §4.8's literal text
// (an intentional divergence from the original's floor `//`, recorded in
// DESIGN.md's Open Question decisions); division by a constant zero is
// left unfolded unless Strict is set, in which case FoldModule panics
// with *ConstantFoldingError. Nothing in this package recovers that
// panic, and analysis.AnalyzeSource does not recover it either.
type ConstantFolder struct {
	Strict bool
}

func NewConstantFolder(strict bool) *ConstantFolder {
	return &ConstantFolder{Strict: strict}
}

// FoldModule folds every expression reachable from m's top-level
// variables, function bodies, and statute definitions/elements, and
// returns a new module when anything changed.
func (f *ConstantFolder) FoldModule(m *ast.Module) *ast.Module {
	changed := false

	vars := make([]*ast.VariableDecl, len(m.Variables))
	for i, v := range m.Variables {
		vars[i] = f.foldVariableDecl(v)
		changed = changed || vars[i] != v
	}
	fns := make([]*ast.FunctionDef, len(m.Functions))
	for i, fn := range m.Functions {
		fns[i] = f.foldFunction(fn)
		changed = changed || fns[i] != fn
	}
	statutes := make([]*ast.Statute, len(m.Statutes))
	for i, st := range m.Statutes {
		statutes[i] = f.foldStatute(st)
		changed = changed || statutes[i] != st
	}
	if !changed {
		return m
	}
	out := *m
	out.Variables, out.Functions, out.Statutes = vars, fns, statutes
	return &out
}

func (f *ConstantFolder) foldVariableDecl(v *ast.VariableDecl) *ast.VariableDecl {
	val := f.foldExpr(v.Value)
	if val == v.Value {
		return v
	}
	out := *v
	out.Value = val
	return &out
}

func (f *ConstantFolder) foldFunction(fn *ast.FunctionDef) *ast.FunctionDef {
	body := f.foldBlock(fn.Body)
	if body == fn.Body {
		return fn
	}
	out := *fn
	out.Body = body
	return &out
}

func (f *ConstantFolder) foldBlock(b *ast.Block) *ast.Block {
	if b == nil {
		return nil
	}
	stmts := make([]ast.Stmt, len(b.Stmts))
	changed := false
	for i, s := range b.Stmts {
		stmts[i] = f.foldStmt(s)
		changed = changed || stmts[i] != s
	}
	if !changed {
		return b
	}
	out := *b
	out.Stmts = stmts
	return &out
}

func (f *ConstantFolder) foldStmt(s ast.Stmt) ast.Stmt {
	switch st := s.(type) {
	case *ast.VariableDecl:
		return f.foldVariableDecl(st)
	case *ast.Assignment:
		target := f.foldExpr(st.Target)
		val := f.foldExpr(st.Value)
		if target == st.Target && val == st.Value {
			return st
		}
		out := *st
		out.Target, out.Value = target, val
		return &out
	case *ast.Return:
		val := f.foldExpr(st.Value)
		if val == st.Value {
			return st
		}
		out := *st
		out.Value = val
		return &out
	case *ast.ExpressionStmt:
		val := f.foldExpr(st.Value)
		if val == st.Value {
			return st
		}
		out := *st
		out.Value = val
		return &out
	case *ast.Block:
		return f.foldBlock(st)
	default:
		return s
	}
}

func (f *ConstantFolder) foldStatute(st *ast.Statute) *ast.Statute {
	changed := false
	defs := make([]*ast.DefinitionEntry, len(st.Definitions))
	for i, d := range st.Definitions {
		val := f.foldExpr(d.Value)
		if val == d.Value {
			defs[i] = d
			continue
		}
		cp := *d
		cp.Value = val
		defs[i] = &cp
		changed = true
	}
	elems := make([]*ast.Element, len(st.Elements))
	for i, e := range st.Elements {
		desc := f.foldExpr(e.Description)
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

// foldExpr folds e's children first, then attempts to fold the resulting
// node itself into a literal.
func (f *ConstantFolder) foldExpr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *ast.Binary:
		left := f.foldExpr(n.Left)
		right := f.foldExpr(n.Right)
		if left != n.Left || right != n.Right {
			cp := *n
			cp.Left, cp.Right = left, right
			n = &cp
		}
		return f.tryFoldBinary(n)
	case *ast.Unary:
		operand := f.foldExpr(n.Operand)
		if operand != n.Operand {
			cp := *n
			cp.Operand = operand
			n = &cp
		}
		return f.tryFoldUnary(n)
	case *ast.FieldAccess:
		target := f.foldExpr(n.Target)
		if target == n.Target {
			return n
		}
		cp := *n
		cp.Target = target
		return &cp
	case *ast.IndexAccess:
		target := f.foldExpr(n.Target)
		idx := f.foldExpr(n.Index)
		if target == n.Target && idx == n.Index {
			return n
		}
		cp := *n
		cp.Target, cp.Index = target, idx
		return &cp
	case *ast.Call:
		callee := f.foldExpr(n.Callee)
		changed := callee != n.Callee
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = f.foldExpr(a)
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
			val := f.foldExpr(fld.Value)
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
	case *ast.Match:
		scrutinee := f.foldExpr(n.Scrutinee)
		changed := scrutinee != n.Scrutinee
		arms := make([]*ast.MatchArm, len(n.Arms))
		for i, a := range n.Arms {
			guard := f.foldExpr(a.Guard)
			body := f.foldExpr(a.Body)
			if guard == a.Guard && body == a.Body {
				arms[i] = a
				continue
			}
			acp := *a
			acp.Guard, acp.Body = guard, body
			arms[i] = &acp
			changed = true
		}
		if !changed {
			return n
		}
		cp := *n
		cp.Scrutinee, cp.Arms = scrutinee, arms
		return &cp
	default:
		return e
	}
}

func (f *ConstantFolder) tryFoldBinary(n *ast.Binary) ast.Expr {
	left, lok := asLiteral(n.Left)
	right, rok := asLiteral(n.Right)
	if !lok || !rok {
		return n
	}
	switch {
	case left.isInt && right.isInt:
		return f.foldIntBinary(n, left.i, right.i)
	case left.isBool && right.isBool:
		return foldBoolBinary(n, left.b, right.b)
	case left.isString && right.isString:
		return foldStringBinary(n, left.s, right.s)
	case (left.isInt || left.isFloat) && (right.isInt || right.isFloat):
		return foldFloatBinary(n, left.asFloat(), right.asFloat())
	default:
		return n
	}
}

func (f *ConstantFolder) tryFoldUnary(n *ast.Unary) ast.Expr {
	operand, ok := asLiteral(n.Operand)
	if !ok {
		return n
	}
	sp := n.NodeSpan()
	switch n.Op {
	case ast.OpNeg:
		if operand.isInt {
			return newIntLit(sp, -operand.i)
		}
		if operand.isFloat {
			return newFloatLit(sp, -operand.f)
		}
	case ast.OpNot:
		if operand.isBool {
			return newBoolLit(sp, !operand.b)
		}
	}
	return n
}

func (f *ConstantFolder) foldIntBinary(n *ast.Binary, l, r int64) ast.Expr {
	sp := n.NodeSpan()
	switch n.Op {
	case ast.OpAdd:
		return newIntLit(sp, l+r)
	case ast.OpSub:
		return newIntLit(sp, l-r)
	case ast.OpMul:
		return newIntLit(sp, l*r)
	case ast.OpDiv:
		if r == 0 {
			if f.Strict {
				panic(&ConstantFoldingError{Message: fmt.Sprintf("division by zero at %v", sp)})
			}
			return n
		}
		return newIntLit(sp, l/r)
	case ast.OpMod:
		if r == 0 {
			if f.Strict {
				panic(&ConstantFoldingError{Message: fmt.Sprintf("division by zero at %v", sp)})
			}
			return n
		}
		return newIntLit(sp, l%r)
	case ast.OpEq:
		return newBoolLit(sp, l == r)
	case ast.OpNeq:
		return newBoolLit(sp, l != r)
	case ast.OpLt:
		return newBoolLit(sp, l < r)
	case ast.OpGt:
		return newBoolLit(sp, l > r)
	case ast.OpLe:
		return newBoolLit(sp, l <= r)
	case ast.OpGe:
		return newBoolLit(sp, l >= r)
	default:
		return n
	}
}

func foldFloatBinary(n *ast.Binary, l, r float64) ast.Expr {
	sp := n.NodeSpan()
	switch n.Op {
	case ast.OpAdd:
		return newFloatLit(sp, l+r)
	case ast.OpSub:
		return newFloatLit(sp, l-r)
	case ast.OpMul:
		return newFloatLit(sp, l*r)
	case ast.OpDiv:
		if r == 0 {
			return n
		}
		return newFloatLit(sp, l/r)
	case ast.OpEq:
		return newBoolLit(sp, l == r)
	case ast.OpNeq:
		return newBoolLit(sp, l != r)
	case ast.OpLt:
		return newBoolLit(sp, l < r)
	case ast.OpGt:
		return newBoolLit(sp, l > r)
	case ast.OpLe:
		return newBoolLit(sp, l <= r)
	case ast.OpGe:
		return newBoolLit(sp, l >= r)
	default:
		return n
	}
}

func foldBoolBinary(n *ast.Binary, l, r bool) ast.Expr {
	sp := n.NodeSpan()
	switch n.Op {
	case ast.OpAnd:
		return newBoolLit(sp, l && r)
	case ast.OpOr:
		return newBoolLit(sp, l || r)
	case ast.OpEq:
		return newBoolLit(sp, l == r)
	case ast.OpNeq:
		return newBoolLit(sp, l != r)
	default:
		return n
	}
}

func foldStringBinary(n *ast.Binary, l, r string) ast.Expr {
	sp := n.NodeSpan()
	switch n.Op {
	case ast.OpAdd:
		return newStringLit(sp, l+r)
	case ast.OpEq:
		return newBoolLit(sp, l == r)
	case ast.OpNeq:
		return newBoolLit(sp, l != r)
	default:
		return n
	}
}

// literalValue is the union of scalar values tryFoldBinary/tryFoldUnary
// need to read out of a literal expression without a type switch at
// every call site.
type literalValue struct {
	isInt, isFloat, isBool, isString bool
	i                                int64
	f                                float64
	b                                bool
	s                                string
}

func (v literalValue) asFloat() float64 {
	if v.isInt {
		return float64(v.i)
	}
	return v.f
}

func asLiteral(e ast.Expr) (literalValue, bool) {
	switch lit := e.(type) {
	case *ast.IntLit:
		return literalValue{isInt: true, i: lit.Value}, true
	case *ast.FloatLit:
		return literalValue{isFloat: true, f: lit.Value}, true
	case *ast.BoolLit:
		return literalValue{isBool: true, b: lit.Value}, true
	case *ast.StringLit:
		return literalValue{isString: true, s: lit.Value}, true
	default:
		return literalValue{}, false
	}
}

func newIntLit(sp span.Span, v int64) *ast.IntLit {
	n := &ast.IntLit{Value: v}
	n.Span = sp
	return n
}

func newFloatLit(sp span.Span, v float64) *ast.FloatLit {
	n := &ast.FloatLit{Value: v}
	n.Span = sp
	return n
}

func newBoolLit(sp span.Span, v bool) *ast.BoolLit {
	n := &ast.BoolLit{Value: v}
	n.Span = sp
	return n
}

func newStringLit(sp span.Span, v string) *ast.StringLit {
	n := &ast.StringLit{Value: v}
	n.Span = sp
	return n
}
