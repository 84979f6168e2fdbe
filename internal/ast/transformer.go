package ast

// Transformer dispatches on node kind to produce a (possibly new) node
// of the same kind. BaseTransformer's default per-kind method rebuilds
// the node only when a child actually changed, preserving structural
// sharing with the original tree — the Go analogue of the original
// Transformer's "rebuild only on change" discipline.
type Transformer interface {
	TransformModule(*Module) *Module
	TransformImport(*Import) *Import
	TransformStructDef(*StructDef) *StructDef
	TransformFieldDef(*FieldDef) *FieldDef
	TransformFunctionDef(*FunctionDef) *FunctionDef
	TransformParamDef(*ParamDef) *ParamDef
	TransformBlock(*Block) *Block
	TransformVariableDecl(*VariableDecl) *VariableDecl
	TransformAssignment(*Assignment) *Assignment
	TransformReturn(*Return) *Return
	TransformPassStmt(*PassStmt) *PassStmt
	TransformExpressionStmt(*ExpressionStmt) *ExpressionStmt
	TransformStatute(*Statute) *Statute
	TransformDefinitionEntry(*DefinitionEntry) *DefinitionEntry
	TransformElement(*Element) *Element
	TransformPenalty(*Penalty) *Penalty
	TransformIllustration(*Illustration) *Illustration
	TransformIdentifier(*Identifier) *Identifier
	TransformFieldAccess(*FieldAccess) *FieldAccess
	TransformIndexAccess(*IndexAccess) *IndexAccess
	TransformCall(*Call) *Call
	TransformBinary(*Binary) *Binary
	TransformUnary(*Unary) *Unary
	TransformPassExpr(*PassExpr) *PassExpr
	TransformFieldAssignment(*FieldAssignment) *FieldAssignment
	TransformStructLiteral(*StructLiteral) *StructLiteral
	TransformMatch(*Match) *Match
	TransformMatchArm(*MatchArm) *MatchArm
	TransformWildcardPattern(*WildcardPattern) *WildcardPattern
	TransformLiteralPattern(*LiteralPattern) *LiteralPattern
	TransformBindingPattern(*BindingPattern) *BindingPattern
	TransformFieldPattern(*FieldPattern) *FieldPattern
	TransformStructPattern(*StructPattern) *StructPattern
	TransformIntLit(*IntLit) *IntLit
	TransformFloatLit(*FloatLit) *FloatLit
	TransformBoolLit(*BoolLit) *BoolLit
	TransformStringLit(*StringLit) *StringLit
	TransformMoney(*Money) *Money
	TransformPercent(*Percent) *Percent
	TransformDate(*Date) *Date
	TransformDuration(*Duration) *Duration
	TransformBuiltinType(*BuiltinType) *BuiltinType
	TransformNamedType(*NamedType) *NamedType
	TransformGenericType(*GenericType) *GenericType
	TransformOptionalType(*OptionalType) *OptionalType
	TransformArrayType(*ArrayType) *ArrayType
}

// Transform dispatches n to the matching method on t.
func Transform(t Transformer, n Node) Node {
	switch v := n.(type) {
	case *Module:
		return t.TransformModule(v)
	case *Import:
		return t.TransformImport(v)
	case *StructDef:
		return t.TransformStructDef(v)
	case *FieldDef:
		return t.TransformFieldDef(v)
	case *FunctionDef:
		return t.TransformFunctionDef(v)
	case *ParamDef:
		return t.TransformParamDef(v)
	case *Block:
		return t.TransformBlock(v)
	case *VariableDecl:
		return t.TransformVariableDecl(v)
	case *Assignment:
		return t.TransformAssignment(v)
	case *Return:
		return t.TransformReturn(v)
	case *PassStmt:
		return t.TransformPassStmt(v)
	case *ExpressionStmt:
		return t.TransformExpressionStmt(v)
	case *Statute:
		return t.TransformStatute(v)
	case *DefinitionEntry:
		return t.TransformDefinitionEntry(v)
	case *Element:
		return t.TransformElement(v)
	case *Penalty:
		return t.TransformPenalty(v)
	case *Illustration:
		return t.TransformIllustration(v)
	case *Identifier:
		return t.TransformIdentifier(v)
	case *FieldAccess:
		return t.TransformFieldAccess(v)
	case *IndexAccess:
		return t.TransformIndexAccess(v)
	case *Call:
		return t.TransformCall(v)
	case *Binary:
		return t.TransformBinary(v)
	case *Unary:
		return t.TransformUnary(v)
	case *PassExpr:
		return t.TransformPassExpr(v)
	case *FieldAssignment:
		return t.TransformFieldAssignment(v)
	case *StructLiteral:
		return t.TransformStructLiteral(v)
	case *Match:
		return t.TransformMatch(v)
	case *MatchArm:
		return t.TransformMatchArm(v)
	case *WildcardPattern:
		return t.TransformWildcardPattern(v)
	case *LiteralPattern:
		return t.TransformLiteralPattern(v)
	case *BindingPattern:
		return t.TransformBindingPattern(v)
	case *FieldPattern:
		return t.TransformFieldPattern(v)
	case *StructPattern:
		return t.TransformStructPattern(v)
	case *IntLit:
		return t.TransformIntLit(v)
	case *FloatLit:
		return t.TransformFloatLit(v)
	case *BoolLit:
		return t.TransformBoolLit(v)
	case *StringLit:
		return t.TransformStringLit(v)
	case *Money:
		return t.TransformMoney(v)
	case *Percent:
		return t.TransformPercent(v)
	case *Date:
		return t.TransformDate(v)
	case *Duration:
		return t.TransformDuration(v)
	case *BuiltinType:
		return t.TransformBuiltinType(v)
	case *NamedType:
		return t.TransformNamedType(v)
	case *GenericType:
		return t.TransformGenericType(v)
	case *OptionalType:
		return t.TransformOptionalType(v)
	case *ArrayType:
		return t.TransformArrayType(v)
	default:
		return n
	}
}

// TransformExprField runs t over e and type-asserts the result back to
// Expr; BaseTransformer's default methods use this for every Expr-typed
// field so a rewrite of a sub-expression (e.g. constant folding) composes
// through arbitrarily nested expressions without each node kind needing
// bespoke dispatch code.
func TransformExprField(t Transformer, e Expr) Expr {
	if e == nil {
		return nil
	}
	out, _ := Transform(t, e).(Expr)
	return out
}

func TransformStmtField(t Transformer, s Stmt) Stmt {
	if s == nil {
		return nil
	}
	out, _ := Transform(t, s).(Stmt)
	return out
}

func TransformPatternField(t Transformer, p Pattern) Pattern {
	if p == nil {
		return nil
	}
	out, _ := Transform(t, p).(Pattern)
	return out
}

func TransformTypeField(t Transformer, tr TypeRef) TypeRef {
	if tr == nil {
		return nil
	}
	out, _ := Transform(t, tr).(TypeRef)
	return out
}

// BaseTransformer is the identity transformer: every method rebuilds its
// node only if a child transformed to something different, otherwise it
// returns the original pointer unchanged (structural sharing). Self
// mirrors BaseVisitor's indirection so overriding a leaf method (e.g.
// TransformBinary for constant folding) still gets invoked by composite
// nodes' default recursion.
type BaseTransformer struct {
	Self Transformer
}

func (b *BaseTransformer) self() Transformer {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseTransformer) TransformModule(n *Module) *Module {
	imports := make([]*Import, len(n.Imports))
	changed := false
	for i, x := range n.Imports {
		imports[i] = b.self().TransformImport(x)
		changed = changed || imports[i] != x
	}
	structs := make([]*StructDef, len(n.Structs))
	for i, x := range n.Structs {
		structs[i] = b.self().TransformStructDef(x)
		changed = changed || structs[i] != x
	}
	fns := make([]*FunctionDef, len(n.Functions))
	for i, x := range n.Functions {
		fns[i] = b.self().TransformFunctionDef(x)
		changed = changed || fns[i] != x
	}
	statutes := make([]*Statute, len(n.Statutes))
	for i, x := range n.Statutes {
		statutes[i] = b.self().TransformStatute(x)
		changed = changed || statutes[i] != x
	}
	vars := make([]*VariableDecl, len(n.Variables))
	for i, x := range n.Variables {
		vars[i] = b.self().TransformVariableDecl(x)
		changed = changed || vars[i] != x
	}
	if !changed {
		return n
	}
	out := *n
	out.Imports, out.Structs, out.Functions, out.Statutes, out.Variables = imports, structs, fns, statutes, vars
	return &out
}

func (b *BaseTransformer) TransformImport(n *Import) *Import { return n }

func (b *BaseTransformer) TransformStructDef(n *StructDef) *StructDef {
	fields := make([]*FieldDef, len(n.Fields))
	changed := false
	for i, f := range n.Fields {
		fields[i] = b.self().TransformFieldDef(f)
		changed = changed || fields[i] != f
	}
	if !changed {
		return n
	}
	out := *n
	out.Fields = fields
	return &out
}

func (b *BaseTransformer) TransformFieldDef(n *FieldDef) *FieldDef {
	typ := TransformTypeField(b.self(), n.Type)
	if typ == n.Type {
		return n
	}
	out := *n
	out.Type = typ
	return &out
}

func (b *BaseTransformer) TransformFunctionDef(n *FunctionDef) *FunctionDef {
	params := make([]*ParamDef, len(n.Params))
	changed := false
	for i, p := range n.Params {
		params[i] = b.self().TransformParamDef(p)
		changed = changed || params[i] != p
	}
	body := b.self().TransformBlock(n.Body)
	changed = changed || body != n.Body
	retType := TransformTypeField(b.self(), n.ReturnType)
	changed = changed || retType != n.ReturnType
	if !changed {
		return n
	}
	out := *n
	out.Params, out.Body, out.ReturnType = params, body, retType
	return &out
}

func (b *BaseTransformer) TransformParamDef(n *ParamDef) *ParamDef {
	typ := TransformTypeField(b.self(), n.Type)
	if typ == n.Type {
		return n
	}
	out := *n
	out.Type = typ
	return &out
}

func (b *BaseTransformer) TransformBlock(n *Block) *Block {
	stmts := make([]Stmt, len(n.Stmts))
	changed := false
	for i, s := range n.Stmts {
		stmts[i] = TransformStmtField(b.self(), s)
		changed = changed || stmts[i] != s
	}
	if !changed {
		return n
	}
	out := *n
	out.Stmts = stmts
	return &out
}

func (b *BaseTransformer) TransformVariableDecl(n *VariableDecl) *VariableDecl {
	typ := TransformTypeField(b.self(), n.Type)
	val := TransformExprField(b.self(), n.Value)
	if typ == n.Type && val == n.Value {
		return n
	}
	out := *n
	out.Type, out.Value = typ, val
	return &out
}

func (b *BaseTransformer) TransformAssignment(n *Assignment) *Assignment {
	target := TransformExprField(b.self(), n.Target)
	val := TransformExprField(b.self(), n.Value)
	if target == n.Target && val == n.Value {
		return n
	}
	out := *n
	out.Target, out.Value = target, val
	return &out
}

func (b *BaseTransformer) TransformReturn(n *Return) *Return {
	val := TransformExprField(b.self(), n.Value)
	if val == n.Value {
		return n
	}
	out := *n
	out.Value = val
	return &out
}

func (b *BaseTransformer) TransformPassStmt(n *PassStmt) *PassStmt { return n }

func (b *BaseTransformer) TransformExpressionStmt(n *ExpressionStmt) *ExpressionStmt {
	val := TransformExprField(b.self(), n.Value)
	if val == n.Value {
		return n
	}
	out := *n
	out.Value = val
	return &out
}

func (b *BaseTransformer) TransformStatute(n *Statute) *Statute {
	defs := make([]*DefinitionEntry, len(n.Definitions))
	changed := false
	for i, d := range n.Definitions {
		defs[i] = b.self().TransformDefinitionEntry(d)
		changed = changed || defs[i] != d
	}
	elems := make([]*Element, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = b.self().TransformElement(e)
		changed = changed || elems[i] != e
	}
	var penalty *Penalty
	if n.Penalty != nil {
		penalty = b.self().TransformPenalty(n.Penalty)
		changed = changed || penalty != n.Penalty
	}
	illus := make([]*Illustration, len(n.Illustrations))
	for i, x := range n.Illustrations {
		illus[i] = b.self().TransformIllustration(x)
		changed = changed || illus[i] != x
	}
	if !changed {
		return n
	}
	out := *n
	out.Definitions, out.Elements, out.Penalty, out.Illustrations = defs, elems, penalty, illus
	return &out
}

func (b *BaseTransformer) TransformDefinitionEntry(n *DefinitionEntry) *DefinitionEntry {
	val := TransformExprField(b.self(), n.Value)
	if val == n.Value {
		return n
	}
	out := *n
	out.Value = val
	return &out
}

func (b *BaseTransformer) TransformElement(n *Element) *Element {
	desc := TransformExprField(b.self(), n.Description)
	if desc == n.Description {
		return n
	}
	out := *n
	out.Description = desc
	return &out
}

func (b *BaseTransformer) TransformPenalty(n *Penalty) *Penalty { return n }

func (b *BaseTransformer) TransformIllustration(n *Illustration) *Illustration { return n }

func (b *BaseTransformer) TransformIdentifier(n *Identifier) *Identifier { return n }

func (b *BaseTransformer) TransformFieldAccess(n *FieldAccess) *FieldAccess {
	target := TransformExprField(b.self(), n.Target)
	if target == n.Target {
		return n
	}
	out := *n
	out.Target = target
	return &out
}

func (b *BaseTransformer) TransformIndexAccess(n *IndexAccess) *IndexAccess {
	target := TransformExprField(b.self(), n.Target)
	idx := TransformExprField(b.self(), n.Index)
	if target == n.Target && idx == n.Index {
		return n
	}
	out := *n
	out.Target, out.Index = target, idx
	return &out
}

func (b *BaseTransformer) TransformCall(n *Call) *Call {
	callee := TransformExprField(b.self(), n.Callee)
	changed := callee != n.Callee
	args := make([]Expr, len(n.Args))
	for i, a := range n.Args {
		args[i] = TransformExprField(b.self(), a)
		changed = changed || args[i] != a
	}
	if !changed {
		return n
	}
	out := *n
	out.Callee, out.Args = callee, args
	return &out
}

func (b *BaseTransformer) TransformBinary(n *Binary) *Binary {
	left := TransformExprField(b.self(), n.Left)
	right := TransformExprField(b.self(), n.Right)
	if left == n.Left && right == n.Right {
		return n
	}
	out := *n
	out.Left, out.Right = left, right
	return &out
}

func (b *BaseTransformer) TransformUnary(n *Unary) *Unary {
	operand := TransformExprField(b.self(), n.Operand)
	if operand == n.Operand {
		return n
	}
	out := *n
	out.Operand = operand
	return &out
}

func (b *BaseTransformer) TransformPassExpr(n *PassExpr) *PassExpr { return n }

func (b *BaseTransformer) TransformFieldAssignment(n *FieldAssignment) *FieldAssignment {
	val := TransformExprField(b.self(), n.Value)
	if val == n.Value {
		return n
	}
	out := *n
	out.Value = val
	return &out
}

func (b *BaseTransformer) TransformStructLiteral(n *StructLiteral) *StructLiteral {
	fields := make([]*FieldAssignment, len(n.Fields))
	changed := false
	for i, f := range n.Fields {
		fields[i] = b.self().TransformFieldAssignment(f)
		changed = changed || fields[i] != f
	}
	if !changed {
		return n
	}
	out := *n
	out.Fields = fields
	return &out
}

func (b *BaseTransformer) TransformMatch(n *Match) *Match {
	scrutinee := TransformExprField(b.self(), n.Scrutinee)
	changed := scrutinee != n.Scrutinee
	arms := make([]*MatchArm, len(n.Arms))
	for i, a := range n.Arms {
		arms[i] = b.self().TransformMatchArm(a)
		changed = changed || arms[i] != a
	}
	if !changed {
		return n
	}
	out := *n
	out.Scrutinee, out.Arms = scrutinee, arms
	return &out
}

func (b *BaseTransformer) TransformMatchArm(n *MatchArm) *MatchArm {
	pat := TransformPatternField(b.self(), n.Pattern)
	guard := TransformExprField(b.self(), n.Guard)
	body := TransformExprField(b.self(), n.Body)
	if pat == n.Pattern && guard == n.Guard && body == n.Body {
		return n
	}
	out := *n
	out.Pattern, out.Guard, out.Body = pat, guard, body
	return &out
}

func (b *BaseTransformer) TransformWildcardPattern(n *WildcardPattern) *WildcardPattern { return n }

func (b *BaseTransformer) TransformLiteralPattern(n *LiteralPattern) *LiteralPattern {
	val := TransformExprField(b.self(), n.Value)
	if val == n.Value {
		return n
	}
	out := *n
	out.Value = val
	return &out
}

func (b *BaseTransformer) TransformBindingPattern(n *BindingPattern) *BindingPattern { return n }

func (b *BaseTransformer) TransformFieldPattern(n *FieldPattern) *FieldPattern {
	pat := TransformPatternField(b.self(), n.Pattern)
	if pat == n.Pattern {
		return n
	}
	out := *n
	out.Pattern = pat
	return &out
}

func (b *BaseTransformer) TransformStructPattern(n *StructPattern) *StructPattern {
	fields := make([]*FieldPattern, len(n.Fields))
	changed := false
	for i, f := range n.Fields {
		fields[i] = b.self().TransformFieldPattern(f)
		changed = changed || fields[i] != f
	}
	if !changed {
		return n
	}
	out := *n
	out.Fields = fields
	return &out
}

func (b *BaseTransformer) TransformIntLit(n *IntLit) *IntLit       { return n }
func (b *BaseTransformer) TransformFloatLit(n *FloatLit) *FloatLit { return n }
func (b *BaseTransformer) TransformBoolLit(n *BoolLit) *BoolLit    { return n }
func (b *BaseTransformer) TransformStringLit(n *StringLit) *StringLit { return n }
func (b *BaseTransformer) TransformMoney(n *Money) *Money          { return n }
func (b *BaseTransformer) TransformPercent(n *Percent) *Percent    { return n }
func (b *BaseTransformer) TransformDate(n *Date) *Date             { return n }
func (b *BaseTransformer) TransformDuration(n *Duration) *Duration { return n }

func (b *BaseTransformer) TransformBuiltinType(n *BuiltinType) *BuiltinType { return n }
func (b *BaseTransformer) TransformNamedType(n *NamedType) *NamedType       { return n }

func (b *BaseTransformer) TransformGenericType(n *GenericType) *GenericType {
	args := make([]TypeRef, len(n.Args))
	changed := false
	for i, a := range n.Args {
		args[i] = TransformTypeField(b.self(), a)
		changed = changed || args[i] != a
	}
	if !changed {
		return n
	}
	out := *n
	out.Args = args
	return &out
}

func (b *BaseTransformer) TransformOptionalType(n *OptionalType) *OptionalType {
	inner := TransformTypeField(b.self(), n.Inner)
	if inner == n.Inner {
		return n
	}
	out := *n
	out.Inner = inner
	return &out
}

func (b *BaseTransformer) TransformArrayType(n *ArrayType) *ArrayType {
	elem := TransformTypeField(b.self(), n.Elem)
	if elem == n.Elem {
		return n
	}
	out := *n
	out.Elem = elem
	return &out
}
