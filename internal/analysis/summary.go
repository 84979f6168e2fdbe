package analysis

import "github.com/gongahkia/yuho/internal/ast"

// ASTSummary is a high-level structural summary of a parsed module,
// grounded on original_source/src/yuho/services/analysis.py's
// ASTSummary.from_module. The Python source also counts top-level
// `references`/`assertions` nodes; this AST has no such node kinds (no
// distinct reference or assertion expression survived into the Go
// grammar), so those two fields are dropped rather than faked.
type ASTSummary struct {
	Imports       int `json:"imports"`
	Structs       int `json:"structs"`
	Functions     int `json:"functions"`
	Statutes      int `json:"statutes"`
	Variables     int `json:"variables"`
	Definitions   int `json:"definitions"`
	Elements      int `json:"elements"`
	Penalties     int `json:"penalties"`
	Illustrations int `json:"illustrations"`
	TotalNodes    int `json:"total_nodes"`
}

// SummarizeModule builds an ASTSummary from m.
func SummarizeModule(m *ast.Module) ASTSummary {
	var definitions, elements, penalties, illustrations int
	for _, s := range m.Statutes {
		definitions += len(s.Definitions)
		elements += len(s.Elements)
		illustrations += len(s.Illustrations)
		if s.Penalty != nil {
			penalties++
		}
	}
	return ASTSummary{
		Imports:       len(m.Imports),
		Structs:       len(m.Structs),
		Functions:     len(m.Functions),
		Statutes:      len(m.Statutes),
		Variables:     len(m.Variables),
		Definitions:   definitions,
		Elements:      elements,
		Penalties:     penalties,
		Illustrations: illustrations,
		TotalNodes:    countNodes(m),
	}
}

// countNodes walks every reachable node from m and counts it, mirroring
// _count_nodes's stack-based traversal. The AST has no generic
// `children()` method (internal/ast/nodes.go keeps every node a plain,
// method-free struct beyond the base/marker interfaces, per the
// teacher's "pure data structures" convention), so this walk dispatches
// explicitly over every node kind instead.
func countNodes(m *ast.Module) int {
	count := 1 // the module itself
	for _, imp := range m.Imports {
		_ = imp
		count++
	}
	for _, s := range m.Structs {
		count += countStructDef(s)
	}
	for _, f := range m.Functions {
		count += countFunctionDef(f)
	}
	for _, v := range m.Variables {
		count += countVariableDecl(v)
	}
	for _, s := range m.Statutes {
		count += countStatute(s)
	}
	return count
}

func countStructDef(s *ast.StructDef) int {
	count := 1
	for _, f := range s.Fields {
		count += 1 + countTypeRef(f.Type)
	}
	return count
}

func countFunctionDef(f *ast.FunctionDef) int {
	count := 1
	for _, p := range f.Params {
		count += 1 + countTypeRef(p.Type)
	}
	if f.ReturnType != nil {
		count += countTypeRef(f.ReturnType)
	}
	if f.Body != nil {
		count += countBlock(f.Body)
	}
	return count
}

func countVariableDecl(v *ast.VariableDecl) int {
	count := 1 + countTypeRef(v.Type)
	count += countExpr(v.Value)
	return count
}

func countStatute(s *ast.Statute) int {
	count := 1
	for _, d := range s.Definitions {
		count += 1 + countExpr(d.Value)
	}
	for _, e := range s.Elements {
		count += 1 + countExpr(e.Description)
	}
	if s.Penalty != nil {
		count++
		if s.Penalty.ImprisonmentMin != nil {
			count++
		}
		if s.Penalty.ImprisonmentMax != nil {
			count++
		}
		if s.Penalty.FineMin != nil {
			count++
		}
		if s.Penalty.FineMax != nil {
			count++
		}
	}
	count += len(s.Illustrations)
	return count
}

func countBlock(b *ast.Block) int {
	if b == nil {
		return 0
	}
	count := 1
	for _, st := range b.Stmts {
		count += countStmt(st)
	}
	return count
}

func countStmt(s ast.Stmt) int {
	switch v := s.(type) {
	case nil:
		return 0
	case *ast.VariableDecl:
		return countVariableDecl(v)
	case *ast.Assignment:
		return 1 + countExpr(v.Target) + countExpr(v.Value)
	case *ast.Return:
		return 1 + countExpr(v.Value)
	case *ast.PassStmt:
		return 1
	case *ast.ExpressionStmt:
		return 1 + countExpr(v.Value)
	case *ast.Block:
		return countBlock(v)
	default:
		return 1
	}
}

func countExpr(e ast.Expr) int {
	switch v := e.(type) {
	case nil:
		return 0
	case *ast.Binary:
		return 1 + countExpr(v.Left) + countExpr(v.Right)
	case *ast.Unary:
		return 1 + countExpr(v.Operand)
	case *ast.FieldAccess:
		return 1 + countExpr(v.Target)
	case *ast.IndexAccess:
		return 1 + countExpr(v.Target) + countExpr(v.Index)
	case *ast.Call:
		count := 1 + countExpr(v.Callee)
		for _, a := range v.Args {
			count += countExpr(a)
		}
		return count
	case *ast.StructLiteral:
		count := 1
		for _, f := range v.Fields {
			count += 1 + countExpr(f.Value)
		}
		return count
	case *ast.Match:
		count := 1 + countExpr(v.Scrutinee)
		for _, a := range v.Arms {
			count += 1 + countPattern(a.Pattern) + countExpr(a.Guard) + countExpr(a.Body)
		}
		return count
	default:
		// Literal and identifier leaves: IntLit, FloatLit, BoolLit,
		// StringLit, Money, Percent, Date, Duration, Identifier,
		// PassExpr all count as exactly one node.
		return 1
	}
}

func countPattern(p ast.Pattern) int {
	switch v := p.(type) {
	case nil:
		return 0
	case *ast.LiteralPattern:
		return 1 + countExpr(v.Value)
	case *ast.StructPattern:
		count := 1
		for _, f := range v.Fields {
			count++
			if f.Pattern != nil {
				count += countPattern(f.Pattern)
			}
		}
		return count
	default:
		return 1
	}
}

func countTypeRef(t ast.TypeRef) int {
	switch v := t.(type) {
	case nil:
		return 0
	case *ast.OptionalType:
		return 1 + countTypeRef(v.Inner)
	case *ast.ArrayType:
		return 1 + countTypeRef(v.Elem)
	case *ast.GenericType:
		count := 1
		for _, a := range v.Args {
			count += countTypeRef(a)
		}
		return count
	default:
		return 1
	}
}
