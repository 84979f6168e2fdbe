// Package ast defines the immutable, typed abstract syntax tree that
// internal/ast's Builder lowers the concrete tree (internal/cst) into.
// The node set is closed: every variant named by the data model is a
// distinct Go type implementing the Node marker interface, and the
// Visitor/Transformer framework in visitor.go and transformer.go dispatch
// over that fixed set rather than relying on open-ended interfaces.
//
// Nodes are built once and never mutated afterward; rewrites (the
// optimizer passes) produce new nodes rather than editing existing ones.
package ast

import "github.com/gongahkia/yuho/internal/span"

// ID is a stable node identity assigned once at build time. Side tables
// (inferred types, diagnostics) key off ID rather than pointer identity,
// so a copy of a subtree keeps its ancestors' cross references valid.
type ID uint64

// Node is the marker interface every AST node type implements. The
// unexported method closes the set to this package.
type Node interface {
	isNode()
	NodeID() ID
	NodeSpan() span.Span
}

// Expr is any node usable as an expression.
type Expr interface {
	Node
	isExpr()
}

// Stmt is any node usable as a statement inside a Block.
type Stmt interface {
	Node
	isStmt()
}

// Pattern is any node usable as a match-arm pattern.
type Pattern interface {
	Node
	isPattern()
}

// TypeRef is any node usable as a type annotation.
type TypeRef interface {
	Node
	isTypeRef()
}

// base is embedded by every concrete node to supply identity and span
// without each node type repeating the bookkeeping fields.
type base struct {
	ID   ID
	Span span.Span
}

func (b base) isNode()          {}
func (b base) NodeID() ID       { return b.ID }
func (b base) NodeSpan() span.Span { return b.Span }

// ---- Currency ---------------------------------------------------------

// Currency is the closed set of currencies a Money literal can carry.
// The parser only ever produces CurrencyUSD (the "$" syntax from
// spec.md §6.1); the enum is wider so embedders constructing AST nodes
// directly (e.g. from a package manager fixture) can express other
// currencies without a grammar change.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencySGD Currency = "SGD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// ---- Types --------------------------------------------------------------

// BuiltinKind enumerates the primitive type names of spec.md §3.3.
type BuiltinKind string

const (
	BuiltinInt      BuiltinKind = "int"
	BuiltinFloat    BuiltinKind = "float"
	BuiltinBool     BuiltinKind = "bool"
	BuiltinString   BuiltinKind = "string"
	BuiltinMoney    BuiltinKind = "money"
	BuiltinPercent  BuiltinKind = "percent"
	BuiltinDate     BuiltinKind = "date"
	BuiltinDuration BuiltinKind = "duration"
	BuiltinVoid     BuiltinKind = "void"
)

type BuiltinType struct {
	base
	Kind BuiltinKind
}

func (*BuiltinType) isTypeRef() {}

type NamedType struct {
	base
	Name string
}

func (*NamedType) isTypeRef() {}

type GenericType struct {
	base
	BaseName string
	Args     []TypeRef
}

func (*GenericType) isTypeRef() {}

type OptionalType struct {
	base
	Inner TypeRef
}

func (*OptionalType) isTypeRef() {}

type ArrayType struct {
	base
	Elem TypeRef
}

func (*ArrayType) isTypeRef() {}

// ---- Literals -----------------------------------------------------------

type IntLit struct {
	base
	Value int64
}

func (*IntLit) isExpr() {}

type FloatLit struct {
	base
	Value float64
}

func (*FloatLit) isExpr() {}

type BoolLit struct {
	base
	Value bool
}

func (*BoolLit) isExpr() {}

type StringLit struct {
	base
	Value string
}

func (*StringLit) isExpr() {}

// Money is a fixed-point amount stored as integer minor units (cents) to
// avoid floating-point drift in legal/monetary arithmetic.
type Money struct {
	base
	Currency   Currency
	MinorUnits int64
}

func (*Money) isExpr() {}

// Percent is a fixed-point value in the inclusive range [0, 10000]
// (0% to 100%).
type Percent struct {
	base
	// ScaledValue is the percentage scaled by 100 (e.g. 25.5% -> 2550) so
	// fractional percentages are representable without floats.
	ScaledValue int64
}

func (*Percent) isExpr() {}

type Date struct {
	base
	Year, Month, Day int
}

func (*Date) isExpr() {}

// Duration holds non-negative calendar components; all fields are >= 0
// per spec.md §3.3.
type Duration struct {
	base
	Years, Months, Days, Hours, Minutes, Seconds int64
}

func (*Duration) isExpr() {}

// ---- Expressions ----------------------------------------------------------

type Identifier struct {
	base
	Name string
}

func (*Identifier) isExpr() {}

type FieldAccess struct {
	base
	Target Expr
	Field  string
}

func (*FieldAccess) isExpr() {}

type IndexAccess struct {
	base
	Target Expr
	Index  Expr
}

func (*IndexAccess) isExpr() {}

type Call struct {
	base
	Callee Expr
	Args   []Expr
}

func (*Call) isExpr() {}

// BinaryOp is the closed operator set of spec.md §4.6/§4.8.
type BinaryOp string

const (
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
	OpMod BinaryOp = "%"
	OpEq  BinaryOp = "=="
	OpNeq BinaryOp = "!="
	OpLt  BinaryOp = "<"
	OpGt  BinaryOp = ">"
	OpLe  BinaryOp = "<="
	OpGe  BinaryOp = ">="
	OpAnd BinaryOp = "&&"
	OpOr  BinaryOp = "||"
)

type Binary struct {
	base
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*Binary) isExpr() {}

type UnaryOp string

const (
	OpNeg UnaryOp = "-"
	OpNot UnaryOp = "!"
)

type Unary struct {
	base
	Op      UnaryOp
	Operand Expr
}

func (*Unary) isExpr() {}

// PassExpr is the `pass` null/default-value expression.
type PassExpr struct {
	base
}

func (*PassExpr) isExpr() {}

// FieldAssignment is one `name: value` entry of a StructLiteral.
type FieldAssignment struct {
	base
	Name  string
	Value Expr
}

type StructLiteral struct {
	base
	TypeName string
	Fields   []*FieldAssignment
}

func (*StructLiteral) isExpr() {}

// ---- Patterns -------------------------------------------------------------

type WildcardPattern struct {
	base
}

func (*WildcardPattern) isPattern() {}

// LiteralPattern matches a value equal to Value.
type LiteralPattern struct {
	base
	Value Expr
}

func (*LiteralPattern) isPattern() {}

// BindingPattern matches anything and binds it to Name.
type BindingPattern struct {
	base
	Name string
}

func (*BindingPattern) isPattern() {}

// FieldPattern is one `name: pattern` entry of a StructPattern.
type FieldPattern struct {
	base
	Name    string
	Pattern Pattern
}

type StructPattern struct {
	base
	Constructor string
	Fields      []*FieldPattern
}

func (*StructPattern) isPattern() {}

// ---- Match ------------------------------------------------------------------

type MatchArm struct {
	base
	Pattern Pattern
	Guard   Expr // nil if unguarded
	Body    Expr
}

type Match struct {
	base
	Scrutinee            Expr // nil for a bare/conditional-ladder match
	Arms                  []*MatchArm
	EnsureExhaustiveness bool
}

func (*Match) isExpr() {}

// ---- Structs and functions --------------------------------------------------

type FieldDef struct {
	base
	Type TypeRef
	Name string
}

type StructDef struct {
	base
	Name       string
	Fields     []*FieldDef
	TypeParams []string
}

type ParamDef struct {
	base
	Type TypeRef
	Name string
}

type Block struct {
	base
	Stmts []Stmt
}

type FunctionDef struct {
	base
	Name       string
	Params     []*ParamDef
	ReturnType TypeRef // nil if void
	Body       *Block
}

// ---- Statements -------------------------------------------------------------

type VariableDecl struct {
	base
	Type  TypeRef
	Name  string
	Value Expr
}

func (*VariableDecl) isStmt() {}

type Assignment struct {
	base
	Target Expr
	Value  Expr
}

func (*Assignment) isStmt() {}

type Return struct {
	base
	Value Expr // nil for a bare `return;`
}

func (*Return) isStmt() {}

type PassStmt struct {
	base
}

func (*PassStmt) isStmt() {}

type ExpressionStmt struct {
	base
	Value Expr
}

func (*ExpressionStmt) isStmt() {}

func (*Block) isStmt() {}

// ---- Statutes -----------------------------------------------------------

type DefinitionEntry struct {
	base
	Name  string
	Value Expr
}

// ElementRole is the closed set of legal element roles (GLOSSARY).
type ElementRole string

const (
	RoleActusReus    ElementRole = "actus_reus"
	RoleMensRea      ElementRole = "mens_rea"
	RoleCircumstance ElementRole = "circumstance"
)

type Element struct {
	base
	Role        ElementRole
	Name        string
	Description Expr
}

type Penalty struct {
	base
	ImprisonmentMin *Duration
	ImprisonmentMax *Duration
	FineMin         *Money
	FineMax         *Money
	Text            string
}

type Illustration struct {
	base
	Text string
}

type Statute struct {
	base
	Section       string
	Title         string // empty if absent
	Definitions   []*DefinitionEntry
	Elements      []*Element
	Penalty       *Penalty // nil if absent
	Illustrations []*Illustration
}

// ---- Imports and module ---------------------------------------------------

// Import is one `import` declaration. Wildcard imports leave Names nil
// and Wildcard true; plain path imports leave both empty.
type Import struct {
	base
	Path     string
	Names    []string
	Wildcard bool
}

// Module is the AST root, owning every top-level declaration in source
// order plus name-keyed lookup tables built alongside it.
type Module struct {
	base
	File      string
	Imports   []*Import
	Structs   []*StructDef
	Functions []*FunctionDef
	Statutes  []*Statute
	Variables []*VariableDecl

	TypeDefs     map[string]*StructDef
	FunctionDefs map[string]*FunctionDef
	StatuteDefs  map[string]*Statute
}
