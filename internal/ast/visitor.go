package ast

// Visitor dispatches on node kind for read-only traversal. Each method
// corresponds to exactly one AST variant; a concrete visitor overrides
// the kinds it cares about and delegates everything else to BaseVisitor,
// which recurses into children and returns nil — the same
// override-and-delegate shape the original Python Visitor/generic_visit
// pair used, adapted to Go's lack of virtual dispatch through the Self
// field described on BaseVisitor.
type Visitor interface {
	VisitModule(*Module) any
	VisitImport(*Import) any
	VisitStructDef(*StructDef) any
	VisitFieldDef(*FieldDef) any
	VisitFunctionDef(*FunctionDef) any
	VisitParamDef(*ParamDef) any
	VisitBlock(*Block) any
	VisitVariableDecl(*VariableDecl) any
	VisitAssignment(*Assignment) any
	VisitReturn(*Return) any
	VisitPassStmt(*PassStmt) any
	VisitExpressionStmt(*ExpressionStmt) any
	VisitStatute(*Statute) any
	VisitDefinitionEntry(*DefinitionEntry) any
	VisitElement(*Element) any
	VisitPenalty(*Penalty) any
	VisitIllustration(*Illustration) any
	VisitIdentifier(*Identifier) any
	VisitFieldAccess(*FieldAccess) any
	VisitIndexAccess(*IndexAccess) any
	VisitCall(*Call) any
	VisitBinary(*Binary) any
	VisitUnary(*Unary) any
	VisitPassExpr(*PassExpr) any
	VisitFieldAssignment(*FieldAssignment) any
	VisitStructLiteral(*StructLiteral) any
	VisitMatch(*Match) any
	VisitMatchArm(*MatchArm) any
	VisitWildcardPattern(*WildcardPattern) any
	VisitLiteralPattern(*LiteralPattern) any
	VisitBindingPattern(*BindingPattern) any
	VisitFieldPattern(*FieldPattern) any
	VisitStructPattern(*StructPattern) any
	VisitIntLit(*IntLit) any
	VisitFloatLit(*FloatLit) any
	VisitBoolLit(*BoolLit) any
	VisitStringLit(*StringLit) any
	VisitMoney(*Money) any
	VisitPercent(*Percent) any
	VisitDate(*Date) any
	VisitDuration(*Duration) any
	VisitBuiltinType(*BuiltinType) any
	VisitNamedType(*NamedType) any
	VisitGenericType(*GenericType) any
	VisitOptionalType(*OptionalType) any
	VisitArrayType(*ArrayType) any
}

// Visit dispatches n to the matching method on v.
func Visit(v Visitor, n Node) any {
	switch t := n.(type) {
	case *Module:
		return v.VisitModule(t)
	case *Import:
		return v.VisitImport(t)
	case *StructDef:
		return v.VisitStructDef(t)
	case *FieldDef:
		return v.VisitFieldDef(t)
	case *FunctionDef:
		return v.VisitFunctionDef(t)
	case *ParamDef:
		return v.VisitParamDef(t)
	case *Block:
		return v.VisitBlock(t)
	case *VariableDecl:
		return v.VisitVariableDecl(t)
	case *Assignment:
		return v.VisitAssignment(t)
	case *Return:
		return v.VisitReturn(t)
	case *PassStmt:
		return v.VisitPassStmt(t)
	case *ExpressionStmt:
		return v.VisitExpressionStmt(t)
	case *Statute:
		return v.VisitStatute(t)
	case *DefinitionEntry:
		return v.VisitDefinitionEntry(t)
	case *Element:
		return v.VisitElement(t)
	case *Penalty:
		return v.VisitPenalty(t)
	case *Illustration:
		return v.VisitIllustration(t)
	case *Identifier:
		return v.VisitIdentifier(t)
	case *FieldAccess:
		return v.VisitFieldAccess(t)
	case *IndexAccess:
		return v.VisitIndexAccess(t)
	case *Call:
		return v.VisitCall(t)
	case *Binary:
		return v.VisitBinary(t)
	case *Unary:
		return v.VisitUnary(t)
	case *PassExpr:
		return v.VisitPassExpr(t)
	case *FieldAssignment:
		return v.VisitFieldAssignment(t)
	case *StructLiteral:
		return v.VisitStructLiteral(t)
	case *Match:
		return v.VisitMatch(t)
	case *MatchArm:
		return v.VisitMatchArm(t)
	case *WildcardPattern:
		return v.VisitWildcardPattern(t)
	case *LiteralPattern:
		return v.VisitLiteralPattern(t)
	case *BindingPattern:
		return v.VisitBindingPattern(t)
	case *FieldPattern:
		return v.VisitFieldPattern(t)
	case *StructPattern:
		return v.VisitStructPattern(t)
	case *IntLit:
		return v.VisitIntLit(t)
	case *FloatLit:
		return v.VisitFloatLit(t)
	case *BoolLit:
		return v.VisitBoolLit(t)
	case *StringLit:
		return v.VisitStringLit(t)
	case *Money:
		return v.VisitMoney(t)
	case *Percent:
		return v.VisitPercent(t)
	case *Date:
		return v.VisitDate(t)
	case *Duration:
		return v.VisitDuration(t)
	case *BuiltinType:
		return v.VisitBuiltinType(t)
	case *NamedType:
		return v.VisitNamedType(t)
	case *GenericType:
		return v.VisitGenericType(t)
	case *OptionalType:
		return v.VisitOptionalType(t)
	case *ArrayType:
		return v.VisitArrayType(t)
	default:
		return nil
	}
}

// BaseVisitor implements Visitor with "recurse into every child, return
// nil" for every method. Embed it in a concrete visitor and set Self to
// the embedding value so that default recursion dispatches back through
// any methods the embedder overrides — Go has no virtual calls through
// embedding, so this indirection is what stands in for the original
// generic_visit()'s implicit self dispatch.
type BaseVisitor struct {
	Self Visitor
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) genericVisit(n Node) any {
	for _, c := range Children(n) {
		Visit(b.self(), c)
	}
	return nil
}

func (b *BaseVisitor) VisitModule(n *Module) any             { return b.genericVisit(n) }
func (b *BaseVisitor) VisitImport(n *Import) any              { return b.genericVisit(n) }
func (b *BaseVisitor) VisitStructDef(n *StructDef) any        { return b.genericVisit(n) }
func (b *BaseVisitor) VisitFieldDef(n *FieldDef) any          { return b.genericVisit(n) }
func (b *BaseVisitor) VisitFunctionDef(n *FunctionDef) any    { return b.genericVisit(n) }
func (b *BaseVisitor) VisitParamDef(n *ParamDef) any          { return b.genericVisit(n) }
func (b *BaseVisitor) VisitBlock(n *Block) any                { return b.genericVisit(n) }
func (b *BaseVisitor) VisitVariableDecl(n *VariableDecl) any  { return b.genericVisit(n) }
func (b *BaseVisitor) VisitAssignment(n *Assignment) any      { return b.genericVisit(n) }
func (b *BaseVisitor) VisitReturn(n *Return) any              { return b.genericVisit(n) }
func (b *BaseVisitor) VisitPassStmt(n *PassStmt) any          { return b.genericVisit(n) }
func (b *BaseVisitor) VisitExpressionStmt(n *ExpressionStmt) any { return b.genericVisit(n) }
func (b *BaseVisitor) VisitStatute(n *Statute) any            { return b.genericVisit(n) }
func (b *BaseVisitor) VisitDefinitionEntry(n *DefinitionEntry) any { return b.genericVisit(n) }
func (b *BaseVisitor) VisitElement(n *Element) any            { return b.genericVisit(n) }
func (b *BaseVisitor) VisitPenalty(n *Penalty) any            { return b.genericVisit(n) }
func (b *BaseVisitor) VisitIllustration(n *Illustration) any  { return b.genericVisit(n) }
func (b *BaseVisitor) VisitIdentifier(n *Identifier) any      { return b.genericVisit(n) }
func (b *BaseVisitor) VisitFieldAccess(n *FieldAccess) any    { return b.genericVisit(n) }
func (b *BaseVisitor) VisitIndexAccess(n *IndexAccess) any    { return b.genericVisit(n) }
func (b *BaseVisitor) VisitCall(n *Call) any                  { return b.genericVisit(n) }
func (b *BaseVisitor) VisitBinary(n *Binary) any              { return b.genericVisit(n) }
func (b *BaseVisitor) VisitUnary(n *Unary) any                { return b.genericVisit(n) }
func (b *BaseVisitor) VisitPassExpr(n *PassExpr) any          { return b.genericVisit(n) }
func (b *BaseVisitor) VisitFieldAssignment(n *FieldAssignment) any { return b.genericVisit(n) }
func (b *BaseVisitor) VisitStructLiteral(n *StructLiteral) any { return b.genericVisit(n) }
func (b *BaseVisitor) VisitMatch(n *Match) any                { return b.genericVisit(n) }
func (b *BaseVisitor) VisitMatchArm(n *MatchArm) any          { return b.genericVisit(n) }
func (b *BaseVisitor) VisitWildcardPattern(n *WildcardPattern) any { return b.genericVisit(n) }
func (b *BaseVisitor) VisitLiteralPattern(n *LiteralPattern) any   { return b.genericVisit(n) }
func (b *BaseVisitor) VisitBindingPattern(n *BindingPattern) any   { return b.genericVisit(n) }
func (b *BaseVisitor) VisitFieldPattern(n *FieldPattern) any  { return b.genericVisit(n) }
func (b *BaseVisitor) VisitStructPattern(n *StructPattern) any { return b.genericVisit(n) }
func (b *BaseVisitor) VisitIntLit(n *IntLit) any              { return b.genericVisit(n) }
func (b *BaseVisitor) VisitFloatLit(n *FloatLit) any          { return b.genericVisit(n) }
func (b *BaseVisitor) VisitBoolLit(n *BoolLit) any            { return b.genericVisit(n) }
func (b *BaseVisitor) VisitStringLit(n *StringLit) any        { return b.genericVisit(n) }
func (b *BaseVisitor) VisitMoney(n *Money) any                { return b.genericVisit(n) }
func (b *BaseVisitor) VisitPercent(n *Percent) any            { return b.genericVisit(n) }
func (b *BaseVisitor) VisitDate(n *Date) any                  { return b.genericVisit(n) }
func (b *BaseVisitor) VisitDuration(n *Duration) any          { return b.genericVisit(n) }
func (b *BaseVisitor) VisitBuiltinType(n *BuiltinType) any    { return b.genericVisit(n) }
func (b *BaseVisitor) VisitNamedType(n *NamedType) any        { return b.genericVisit(n) }
func (b *BaseVisitor) VisitGenericType(n *GenericType) any    { return b.genericVisit(n) }
func (b *BaseVisitor) VisitOptionalType(n *OptionalType) any  { return b.genericVisit(n) }
func (b *BaseVisitor) VisitArrayType(n *ArrayType) any        { return b.genericVisit(n) }
