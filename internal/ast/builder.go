package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gongahkia/yuho/internal/cst"
	"github.com/gongahkia/yuho/internal/span"
)

// BuildError reports a concrete node whose shape the builder did not
// expect. Unlike parse diagnostics, this always indicates a grammar/
// builder mismatch rather than a user mistake in the source file (a
// successfully-parsed tree should never reach here with an unexpected
// shape).
type BuildError struct {
	Message string
	Span    span.Span
}

func (e BuildError) Error() string { return fmt.Sprintf("%s: %s", e.Span, e.Message) }

// Builder lowers a concrete syntax tree into the immutable AST, handing
// out a stable ID to every node it constructs.
type Builder struct {
	next ID
	errs []BuildError
}

// NewBuilder returns a fresh Builder. A Builder is single-use: construct
// one per Build call so node IDs stay unique within that module.
func NewBuilder() *Builder {
	return &Builder{next: 1}
}

func (b *Builder) nb(sp span.Span) base {
	id := b.next
	b.next++
	return base{ID: id, Span: sp}
}

func (b *Builder) fail(n *cst.Node, msg string) {
	sp := span.Span{}
	if n != nil {
		sp = n.Span
	}
	b.errs = append(b.errs, BuildError{Message: msg, Span: sp})
}

// Build lowers tree (expected to be a cst.KindModule root) into a Module.
func (b *Builder) Build(tree *cst.Node, file string) (*Module, []BuildError) {
	if tree == nil || tree.Kind != cst.KindModule {
		b.fail(tree, "expected module root")
		return b.emptyModule(file), b.errs
	}
	return b.lowerModule(tree, file), b.errs
}

func (b *Builder) emptyModule(file string) *Module {
	return &Module{
		base:         b.nb(span.Span{}),
		File:         file,
		TypeDefs:     map[string]*StructDef{},
		FunctionDefs: map[string]*FunctionDef{},
		StatuteDefs:  map[string]*Statute{},
	}
}

func (b *Builder) lowerModule(n *cst.Node, file string) *Module {
	m := &Module{
		base:         b.nb(n.Span),
		File:         file,
		TypeDefs:     map[string]*StructDef{},
		FunctionDefs: map[string]*FunctionDef{},
		StatuteDefs:  map[string]*Statute{},
	}
	for _, c := range n.Children {
		switch c.Kind {
		case cst.KindImportDecl:
			m.Imports = append(m.Imports, b.lowerImportDecl(c))
		case cst.KindStructDecl:
			sd := b.lowerStructDecl(c)
			m.Structs = append(m.Structs, sd)
			m.TypeDefs[sd.Name] = sd
		case cst.KindFunctionDecl:
			fd := b.lowerFunctionDecl(c)
			m.Functions = append(m.Functions, fd)
			m.FunctionDefs[fd.Name] = fd
		case cst.KindStatuteDecl:
			st := b.lowerStatuteDecl(c)
			m.Statutes = append(m.Statutes, st)
			m.StatuteDefs[st.Section] = st
		case cst.KindVariableDecl:
			m.Variables = append(m.Variables, b.lowerVariableDecl(c))
		case cst.KindError:
			// already reported as a parse diagnostic; nothing to lower
		default:
			b.fail(c, "unexpected top-level node kind "+string(c.Kind))
		}
	}
	return m
}

// ---- imports ----------------------------------------------------------

func (b *Builder) lowerImportDecl(n *cst.Node) *Import {
	if len(n.Children) < 2 {
		b.fail(n, "malformed import declaration")
		return &Import{base: b.nb(n.Span)}
	}
	rest := n.Children[1:]
	switch {
	case rest[0].Kind == cst.KindStringLit:
		return &Import{base: b.nb(n.Span), Path: rest[0].Text}
	case rest[0].Text == "*":
		path := ""
		if len(rest) >= 3 {
			path = rest[2].Text
		}
		return &Import{base: b.nb(n.Span), Wildcard: true, Path: path}
	case rest[0].Text == "{":
		var names []string
		i := 1
		for i < len(rest) && rest[i].Text != "}" {
			names = append(names, rest[i].Text)
			i++
		}
		path := ""
		if i+2 < len(rest) {
			path = rest[i+2].Text
		}
		return &Import{base: b.nb(n.Span), Names: names, Path: path}
	default:
		b.fail(n, "unrecognized import form")
		return &Import{base: b.nb(n.Span)}
	}
}

// ---- types --------------------------------------------------------------

var builtinTypeNames = map[string]BuiltinKind{
	"int": BuiltinInt, "float": BuiltinFloat, "bool": BuiltinBool,
	"string": BuiltinString, "money": BuiltinMoney, "percent": BuiltinPercent,
	"date": BuiltinDate, "duration": BuiltinDuration, "void": BuiltinVoid,
}

func (b *Builder) lowerTypeRef(n *cst.Node) TypeRef {
	if n == nil {
		return nil
	}
	if len(n.Children) == 0 {
		if kind, ok := builtinTypeNames[n.Text]; ok {
			return &BuiltinType{base: b.nb(n.Span), Kind: kind}
		}
		return &NamedType{base: b.nb(n.Span), Name: n.Text}
	}
	switch {
	case len(n.Children) == 2 && n.Children[1].Text == "?":
		return &OptionalType{base: b.nb(n.Span), Inner: b.lowerTypeRef(n.Children[0])}
	case len(n.Children) == 3 && n.Children[1].Text == "[]":
		return &ArrayType{base: b.nb(n.Span), Elem: b.lowerTypeRef(n.Children[0])}
	default:
		baseName := n.Children[0].Text
		var args []TypeRef
		for _, c := range n.Children[2 : len(n.Children)-1] {
			args = append(args, b.lowerTypeRef(c))
		}
		return &GenericType{base: b.nb(n.Span), BaseName: baseName, Args: args}
	}
}

// ---- struct / function declarations ----------------------------------------

func (b *Builder) lowerStructDecl(n *cst.Node) *StructDef {
	if len(n.Children) < 3 {
		b.fail(n, "malformed struct declaration")
		return &StructDef{base: b.nb(n.Span)}
	}
	name := n.Children[1].Text
	var fields []*FieldDef
	for _, c := range n.Children[3 : len(n.Children)-1] {
		if c.Kind == cst.KindFieldDecl {
			fields = append(fields, b.lowerFieldDecl(c))
		}
	}
	return &StructDef{base: b.nb(n.Span), Name: name, Fields: fields}
}

func (b *Builder) lowerFieldDecl(n *cst.Node) *FieldDef {
	if len(n.Children) < 2 {
		b.fail(n, "malformed field declaration")
		return &FieldDef{base: b.nb(n.Span)}
	}
	return &FieldDef{base: b.nb(n.Span), Type: b.lowerTypeRef(n.Children[0]), Name: n.Children[1].Text}
}

func (b *Builder) lowerFunctionDecl(n *cst.Node) *FunctionDef {
	if len(n.Children) < 4 {
		b.fail(n, "malformed function declaration")
		return &FunctionDef{base: b.nb(n.Span)}
	}
	name := n.Children[1].Text
	idx := 3
	var params []*ParamDef
	for idx < len(n.Children) && n.Children[idx].Kind == cst.KindParamDecl {
		params = append(params, b.lowerParamDecl(n.Children[idx]))
		idx++
	}
	idx++ // skip ')'
	var retType TypeRef
	if idx < len(n.Children) && n.Children[idx].Kind != cst.KindBlock {
		retType = b.lowerTypeRef(n.Children[idx])
		idx++
	}
	var body *Block
	if idx < len(n.Children) {
		body = b.lowerBlock(n.Children[idx])
	}
	return &FunctionDef{base: b.nb(n.Span), Name: name, Params: params, ReturnType: retType, Body: body}
}

func (b *Builder) lowerParamDecl(n *cst.Node) *ParamDef {
	if len(n.Children) < 2 {
		b.fail(n, "malformed parameter declaration")
		return &ParamDef{base: b.nb(n.Span)}
	}
	return &ParamDef{base: b.nb(n.Span), Type: b.lowerTypeRef(n.Children[0]), Name: n.Children[1].Text}
}

func (b *Builder) lowerBlock(n *cst.Node) *Block {
	if n.Kind != cst.KindBlock || len(n.Children) < 2 {
		b.fail(n, "malformed block")
		return &Block{base: b.nb(n.Span)}
	}
	var stmts []Stmt
	for _, c := range n.Children[1 : len(n.Children)-1] {
		stmts = append(stmts, b.lowerStmt(c))
	}
	return &Block{base: b.nb(n.Span), Stmts: stmts}
}

// ---- statements -------------------------------------------------------------

func (b *Builder) lowerStmt(n *cst.Node) Stmt {
	switch n.Kind {
	case cst.KindVariableDecl:
		return b.lowerVariableDecl(n)
	case cst.KindAssignmentStmt:
		if len(n.Children) < 3 {
			b.fail(n, "malformed assignment")
			return &Assignment{base: b.nb(n.Span)}
		}
		return &Assignment{base: b.nb(n.Span), Target: b.lowerExpr(n.Children[0]), Value: b.lowerExpr(n.Children[2])}
	case cst.KindReturnStmt:
		var val Expr
		if len(n.Children) == 3 {
			val = b.lowerExpr(n.Children[1])
		}
		return &Return{base: b.nb(n.Span), Value: val}
	case cst.KindPassStmt:
		return &PassStmt{base: b.nb(n.Span)}
	case cst.KindExpressionStmt:
		if len(n.Children) < 1 {
			b.fail(n, "malformed expression statement")
			return &ExpressionStmt{base: b.nb(n.Span)}
		}
		return &ExpressionStmt{base: b.nb(n.Span), Value: b.lowerExpr(n.Children[0])}
	case cst.KindBlock:
		return b.lowerBlock(n)
	default:
		b.fail(n, "unexpected statement node kind "+string(n.Kind))
		return &PassStmt{base: b.nb(n.Span)}
	}
}

func (b *Builder) lowerVariableDecl(n *cst.Node) *VariableDecl {
	if len(n.Children) < 4 {
		b.fail(n, "malformed variable declaration")
		return &VariableDecl{base: b.nb(n.Span)}
	}
	return &VariableDecl{
		base:  b.nb(n.Span),
		Type:  b.lowerTypeRef(n.Children[0]),
		Name:  n.Children[1].Text,
		Value: b.lowerExpr(n.Children[3]),
	}
}

// ---- statutes -----------------------------------------------------------

func (b *Builder) lowerStatuteDecl(n *cst.Node) *Statute {
	if len(n.Children) < 3 {
		b.fail(n, "malformed statute declaration")
		return &Statute{base: b.nb(n.Span)}
	}
	idx := 1
	section := n.Children[idx].Text
	idx++
	title := ""
	if idx < len(n.Children) && n.Children[idx].Kind == cst.KindStringLit {
		title = n.Children[idx].Text
		idx++
	}
	idx++ // skip '{'

	st := &Statute{base: b.nb(n.Span), Section: section, Title: title}
	if idx >= len(n.Children) {
		return st
	}
	for _, c := range n.Children[idx : len(n.Children)-1] {
		switch c.Kind {
		case cst.KindDefineDecl:
			st.Definitions = append(st.Definitions, b.lowerDefineDecl(c))
		case cst.KindElementDecl:
			st.Elements = append(st.Elements, b.lowerElementDecl(c))
		case cst.KindPenaltyDecl:
			st.Penalty = b.lowerPenaltyDecl(c)
		case cst.KindIllustration:
			st.Illustrations = append(st.Illustrations, b.lowerIllustrationDecl(c))
		}
	}
	return st
}

func (b *Builder) lowerDefineDecl(n *cst.Node) *DefinitionEntry {
	if len(n.Children) < 4 {
		b.fail(n, "malformed define declaration")
		return &DefinitionEntry{base: b.nb(n.Span)}
	}
	return &DefinitionEntry{base: b.nb(n.Span), Name: n.Children[1].Text, Value: b.lowerExpr(n.Children[3])}
}

func (b *Builder) lowerElementDecl(n *cst.Node) *Element {
	if len(n.Children) < 4 {
		b.fail(n, "malformed element declaration")
		return &Element{base: b.nb(n.Span)}
	}
	return &Element{
		base:        b.nb(n.Span),
		Role:        ElementRole(n.Children[0].Text),
		Name:        n.Children[1].Text,
		Description: b.lowerExpr(n.Children[3]),
	}
}

func (b *Builder) lowerPenaltyDecl(n *cst.Node) *Penalty {
	p := &Penalty{base: b.nb(n.Span)}
	if len(n.Children) < 3 {
		return p
	}
	for _, c := range n.Children[2 : len(n.Children)-1] {
		if c.Kind != cst.KindPenaltyEntry || len(c.Children) < 3 {
			continue
		}
		key := c.Children[0].Text
		val := b.lowerExpr(c.Children[2])
		switch key {
		case "imprisonment_min":
			if d, ok := val.(*Duration); ok {
				p.ImprisonmentMin = d
			}
		case "imprisonment_max":
			if d, ok := val.(*Duration); ok {
				p.ImprisonmentMax = d
			}
		case "fine_min":
			if m, ok := val.(*Money); ok {
				p.FineMin = m
			}
		case "fine_max":
			if m, ok := val.(*Money); ok {
				p.FineMax = m
			}
		case "text":
			if s, ok := val.(*StringLit); ok {
				p.Text = s.Value
			}
		}
	}
	return p
}

func (b *Builder) lowerIllustrationDecl(n *cst.Node) *Illustration {
	if len(n.Children) < 2 {
		b.fail(n, "malformed illustration")
		return &Illustration{base: b.nb(n.Span)}
	}
	return &Illustration{base: b.nb(n.Span), Text: n.Children[1].Text}
}

// ---- expressions ------------------------------------------------------------

func (b *Builder) lowerExpr(n *cst.Node) Expr {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case cst.KindIntLit, cst.KindFloatLit, cst.KindBoolLit, cst.KindStringLit,
		cst.KindMoneyLit, cst.KindPercentLit, cst.KindDateLit, cst.KindDurationLit:
		return b.lowerLiteral(n)
	case cst.KindIdentifierExpr:
		return &Identifier{base: b.nb(n.Span), Name: n.Text}
	case cst.KindFieldAccess:
		if len(n.Children) < 3 {
			b.fail(n, "malformed field access")
			return &Identifier{base: b.nb(n.Span)}
		}
		return &FieldAccess{base: b.nb(n.Span), Target: b.lowerExpr(n.Children[0]), Field: n.Children[2].Text}
	case cst.KindIndexAccess:
		if len(n.Children) < 2 {
			b.fail(n, "malformed index access")
			return &Identifier{base: b.nb(n.Span)}
		}
		return &IndexAccess{base: b.nb(n.Span), Target: b.lowerExpr(n.Children[0]), Index: b.lowerExpr(n.Children[1])}
	case cst.KindCallExpr:
		if len(n.Children) < 2 {
			b.fail(n, "malformed call expression")
			return &Identifier{base: b.nb(n.Span)}
		}
		callee := b.lowerExpr(n.Children[0])
		var args []Expr
		for _, c := range n.Children[2 : len(n.Children)-1] {
			args = append(args, b.lowerExpr(c))
		}
		return &Call{base: b.nb(n.Span), Callee: callee, Args: args}
	case cst.KindBinaryExpr:
		if len(n.Children) < 3 {
			b.fail(n, "malformed binary expression")
			return &Identifier{base: b.nb(n.Span)}
		}
		return &Binary{
			base:  b.nb(n.Span),
			Op:    BinaryOp(n.Children[1].Text),
			Left:  b.lowerExpr(n.Children[0]),
			Right: b.lowerExpr(n.Children[2]),
		}
	case cst.KindUnaryExpr:
		if len(n.Children) < 2 {
			b.fail(n, "malformed unary expression")
			return &Identifier{base: b.nb(n.Span)}
		}
		return &Unary{base: b.nb(n.Span), Op: UnaryOp(n.Children[0].Text), Operand: b.lowerExpr(n.Children[1])}
	case cst.KindPassExpr:
		return &PassExpr{base: b.nb(n.Span)}
	case cst.KindStructLiteral:
		return b.lowerStructLiteral(n)
	case cst.KindMatchExpr:
		return b.lowerMatch(n)
	default:
		b.fail(n, "unexpected expression node kind "+string(n.Kind))
		return &Identifier{base: b.nb(n.Span), Name: "<error>"}
	}
}

func (b *Builder) lowerStructLiteral(n *cst.Node) *StructLiteral {
	if len(n.Children) < 2 {
		b.fail(n, "malformed struct literal")
		return &StructLiteral{base: b.nb(n.Span)}
	}
	name := n.Children[0].Text
	var fields []*FieldAssignment
	for _, c := range n.Children[2 : len(n.Children)-1] {
		if c.Kind != cst.KindStructLitField || len(c.Children) < 3 {
			continue
		}
		fields = append(fields, &FieldAssignment{
			base:  b.nb(c.Span),
			Name:  c.Children[0].Text,
			Value: b.lowerExpr(c.Children[2]),
		})
	}
	return &StructLiteral{base: b.nb(n.Span), TypeName: name, Fields: fields}
}

// ---- match / patterns -------------------------------------------------------

func (b *Builder) lowerMatch(n *cst.Node) *Match {
	if len(n.Children) < 2 {
		b.fail(n, "malformed match expression")
		return &Match{base: b.nb(n.Span)}
	}
	idx := 1
	var scrutinee Expr
	if !(n.Children[idx].Kind == cst.KindIdentifierExpr && n.Children[idx].Text == "{") {
		scrutinee = b.lowerExpr(n.Children[idx])
		idx++
	}
	idx++ // skip '{'

	m := &Match{base: b.nb(n.Span), Scrutinee: scrutinee}
	if idx >= len(n.Children) {
		return m
	}
	for _, c := range n.Children[idx : len(n.Children)-1] {
		if c.Kind == cst.KindMatchArm {
			m.Arms = append(m.Arms, b.lowerMatchArm(c))
		}
	}
	return m
}

func (b *Builder) lowerMatchArm(n *cst.Node) *MatchArm {
	if len(n.Children) < 4 {
		b.fail(n, "malformed match arm")
		return &MatchArm{base: b.nb(n.Span)}
	}
	idx := 1
	pat := b.lowerPattern(n.Children[idx])
	idx++
	var guard Expr
	if !(n.Children[idx].Kind == cst.KindIdentifierExpr && n.Children[idx].Text == "=>") {
		guard = b.lowerExpr(n.Children[idx])
		idx++
	}
	idx++ // skip '=>'
	body := b.lowerExpr(n.Children[idx])
	return &MatchArm{base: b.nb(n.Span), Pattern: pat, Guard: guard, Body: body}
}

func (b *Builder) lowerPattern(n *cst.Node) Pattern {
	switch n.Kind {
	case cst.KindPatternWildcard:
		return &WildcardPattern{base: b.nb(n.Span)}
	case cst.KindPatternBinding:
		return &BindingPattern{base: b.nb(n.Span), Name: n.Text}
	case cst.KindPatternStruct:
		if len(n.Children) < 2 {
			b.fail(n, "malformed struct pattern")
			return &StructPattern{base: b.nb(n.Span)}
		}
		ctor := n.Children[0].Text
		var fields []*FieldPattern
		for _, c := range n.Children[2 : len(n.Children)-1] {
			if c.Kind != cst.KindFieldPattern || len(c.Children) < 3 {
				continue
			}
			fields = append(fields, &FieldPattern{
				base:    b.nb(c.Span),
				Name:    c.Children[0].Text,
				Pattern: b.lowerPattern(c.Children[2]),
			})
		}
		return &StructPattern{base: b.nb(n.Span), Constructor: ctor, Fields: fields}
	case cst.KindIntLit, cst.KindFloatLit, cst.KindBoolLit, cst.KindStringLit,
		cst.KindMoneyLit, cst.KindPercentLit, cst.KindDateLit:
		return &LiteralPattern{base: b.nb(n.Span), Value: b.lowerLiteral(n)}
	default:
		b.fail(n, "unexpected pattern node kind "+string(n.Kind))
		return &WildcardPattern{base: b.nb(n.Span)}
	}
}

// ---- literals -----------------------------------------------------------

func (b *Builder) lowerLiteral(n *cst.Node) Expr {
	switch n.Kind {
	case cst.KindIntLit:
		v, _ := strconv.ParseInt(n.Text, 10, 64)
		return &IntLit{base: b.nb(n.Span), Value: v}
	case cst.KindFloatLit:
		v, _ := strconv.ParseFloat(n.Text, 64)
		return &FloatLit{base: b.nb(n.Span), Value: v}
	case cst.KindBoolLit:
		return &BoolLit{base: b.nb(n.Span), Value: n.Text == "TRUE"}
	case cst.KindStringLit:
		return &StringLit{base: b.nb(n.Span), Value: n.Text}
	case cst.KindMoneyLit:
		return &Money{base: b.nb(n.Span), Currency: CurrencyUSD, MinorUnits: parseMoneyMinorUnits(n.Text)}
	case cst.KindPercentLit:
		return &Percent{base: b.nb(n.Span), ScaledValue: parsePercentScaled(n.Text)}
	case cst.KindDateLit:
		y, mo, d := parseDateYMD(n.Text)
		return &Date{base: b.nb(n.Span), Year: y, Month: mo, Day: d}
	case cst.KindDurationLit:
		return b.lowerDuration(n)
	default:
		b.fail(n, "unexpected literal node kind "+string(n.Kind))
		return &IntLit{base: b.nb(n.Span)}
	}
}

func (b *Builder) lowerDuration(n *cst.Node) *Duration {
	d := &Duration{base: b.nb(n.Span)}
	for i := 0; i+1 < len(n.Children); i += 2 {
		amount, _ := strconv.ParseInt(n.Children[i].Text, 10, 64)
		switch strings.TrimSuffix(n.Children[i+1].Text, "s") {
		case "year":
			d.Years += amount
		case "month":
			d.Months += amount
		case "day":
			d.Days += amount
		case "hour":
			d.Hours += amount
		case "minute":
			d.Minutes += amount
		case "second":
			d.Seconds += amount
		}
	}
	return d
}

// parseMoneyMinorUnits turns "$1,000.00" into 100000 minor units (cents).
func parseMoneyMinorUnits(text string) int64 {
	clean := strings.NewReplacer("$", "", ",", "").Replace(text)
	whole, frac, hasFrac := strings.Cut(clean, ".")
	w, _ := strconv.ParseInt(whole, 10, 64)
	units := w * 100
	if hasFrac {
		for len(frac) < 2 {
			frac += "0"
		}
		frac = frac[:2]
		f, _ := strconv.ParseInt(frac, 10, 64)
		units += f
	}
	return units
}

// parsePercentScaled turns "25.5%" into 2550 (value * 100).
func parsePercentScaled(text string) int64 {
	clean := strings.TrimSuffix(text, "%")
	whole, frac, hasFrac := strings.Cut(clean, ".")
	w, _ := strconv.ParseInt(whole, 10, 64)
	scaled := w * 100
	if hasFrac {
		for len(frac) < 2 {
			frac += "0"
		}
		frac = frac[:2]
		f, _ := strconv.ParseInt(frac, 10, 64)
		scaled += f
	}
	return scaled
}

func parseDateYMD(text string) (int, int, int) {
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return 0, 0, 0
	}
	y, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	d, _ := strconv.Atoi(parts[2])
	return y, m, d
}
