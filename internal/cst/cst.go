// Package cst defines the concrete syntax tree produced by internal/parser.
//
// Nodes are pure data (no methods beyond trivial accessors), matching the
// "pure data structures, no methods" convention the rest of this codebase
// follows for location and tree types. A Node is concrete in the sense that
// it retains every token the parser consumed, including ones it recovered
// from; internal/ast lowers this tree into the immutable typed AST that the
// rest of the pipeline actually operates on.
package cst

import "github.com/gongahkia/yuho/internal/span"

// Kind names a concrete node's grammar production.
type Kind string

const (
	KindModule       Kind = "module"
	KindImportDecl   Kind = "import_decl"
	KindStructDecl   Kind = "struct_decl"
	KindFieldDecl    Kind = "field_decl"
	KindFunctionDecl Kind = "function_decl"
	KindParamDecl    Kind = "param_decl"
	KindStatuteDecl  Kind = "statute_decl"
	KindDefineDecl   Kind = "define_decl"
	KindElementDecl  Kind = "element_decl"
	KindPenaltyDecl  Kind = "penalty_decl"
	KindPenaltyEntry Kind = "penalty_entry"
	KindIllustration Kind = "illustration_decl"

	KindTypeRef Kind = "type_ref"

	KindBlock          Kind = "block"
	KindVariableDecl   Kind = "variable_decl"
	KindAssignmentStmt Kind = "assignment_stmt"
	KindReturnStmt     Kind = "return_stmt"
	KindPassStmt       Kind = "pass_stmt"
	KindExpressionStmt Kind = "expression_stmt"

	KindMatchExpr Kind = "match_expr"
	KindMatchArm  Kind = "match_arm"

	KindPatternWildcard Kind = "pattern_wildcard"
	KindPatternLiteral  Kind = "pattern_literal"
	KindPatternBinding  Kind = "pattern_binding"
	KindPatternStruct   Kind = "pattern_struct"
	KindFieldPattern    Kind = "field_pattern"

	KindIdentifierExpr Kind = "identifier_expr"
	KindFieldAccess    Kind = "field_access_expr"
	KindIndexAccess    Kind = "index_access_expr"
	KindCallExpr       Kind = "call_expr"
	KindBinaryExpr     Kind = "binary_expr"
	KindUnaryExpr      Kind = "unary_expr"
	KindPassExpr       Kind = "pass_expr"
	KindStructLiteral  Kind = "struct_literal_expr"
	KindStructLitField Kind = "struct_literal_field"

	KindIntLit      Kind = "int_lit"
	KindFloatLit    Kind = "float_lit"
	KindBoolLit     Kind = "bool_lit"
	KindStringLit   Kind = "string_lit"
	KindMoneyLit    Kind = "money_lit"
	KindPercentLit  Kind = "percent_lit"
	KindDateLit     Kind = "date_lit"
	KindDurationLit Kind = "duration_lit"

	// KindError marks a production that could not be parsed; Missing is
	// true and Text carries whatever the parser could recover for
	// diagnostics.
	KindError Kind = "error"
)

// Node is one production in the concrete syntax tree.
type Node struct {
	Kind     Kind
	Span     span.Span
	Text     string // literal/identifier/operator text; empty for interior nodes
	Children []*Node
	Missing  bool // true when the parser synthesized this node to recover from an error
}

// Leaf builds a childless Node carrying raw token text.
func Leaf(kind Kind, text string, sp span.Span) *Node {
	return &Node{Kind: kind, Span: sp, Text: text}
}

// MissingNode builds a synthetic error-recovery node spanning sp.
func MissingNode(expected string, sp span.Span) *Node {
	return &Node{Kind: KindError, Span: sp, Text: expected, Missing: true}
}

// Interior builds a Node covering the span of all of its children.
func Interior(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind, Children: children}
	for _, c := range children {
		if c == nil {
			continue
		}
		n.Span = span.Merge(n.Span, c.Span)
	}
	return n
}

// Walk visits n and every descendant in depth-first pre-order.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// Errors collects every KindError / Missing node under n, in source order.
func Errors(n *Node) []*Node {
	var out []*Node
	Walk(n, func(node *Node) {
		if node.Kind == KindError || node.Missing {
			out = append(out, node)
		}
	})
	return out
}
