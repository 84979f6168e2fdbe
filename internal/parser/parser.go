// Package parser turns a token stream into the concrete syntax tree
// defined by internal/cst, using hand-written recursive descent over the
// grammar sketched in spec section 6.1. Like the original tree-sitter
// wrapper this replaces, the parser never fails outright on malformed
// input: it synthesizes missing-symbol nodes and keeps going, reporting
// problems as a separate diagnostics list rather than aborting.
package parser

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/gongahkia/yuho/internal/cst"
	"github.com/gongahkia/yuho/internal/lexer"
	"github.com/gongahkia/yuho/internal/token"
)

// ErrFileNotFound and ErrInvalidUTF8 are the two ways ParseFile can fail
// before parsing even starts.
var (
	ErrFileNotFound = errors.New("parser: file not found")
	ErrInvalidUTF8  = errors.New("parser: invalid utf-8")
)

// ParseResult is the outcome of parsing one source buffer.
type ParseResult struct {
	Tree   *cst.Node
	Errors []Diagnostic
	Source string
	File   string
}

// Parser is an immutable, reentrant handle to the grammar. It carries no
// per-parse state of its own; GetParser caches a single shared instance
// so repeat calls skip any setup cost, mirroring the teacher's singleton
// discipline for shared, stateless services.
type Parser struct{}

var (
	cacheMu sync.Mutex
	cached  *Parser
)

// GetParser returns the shared Parser instance, creating it on first use.
func GetParser() *Parser {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached == nil {
		cached = &Parser{}
	}
	return cached
}

// ClearCache discards the cached Parser; the next GetParser call builds a
// fresh one. Exists mainly so tests can assert on cache identity.
func ClearCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cached = nil
}

// Parse scans and parses source, attributing diagnostics to file.
func (p *Parser) Parse(source, file string) ParseResult {
	toks := lexer.New(source, file).Tokenize()
	st := &state{toks: toks, file: file}
	tree := st.parseModule()
	diags := append([]Diagnostic{}, st.diags...)
	for _, errNode := range cst.Errors(tree) {
		diags = append(diags, Diagnostic{
			Kind:    "unexpected",
			Span:    errNode.Span,
			Message: "Missing " + errNode.Text,
		})
	}
	return ParseResult{Tree: tree, Errors: diags, Source: source, File: file}
}

// Parse is the package-level convenience wrapper over the shared Parser.
func Parse(source, file string) ParseResult {
	return GetParser().Parse(source, file)
}

// ParseFile reads path as UTF-8 and parses it.
func ParseFile(path string) (ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if !utf8.Valid(data) {
		return ParseResult{}, fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}
	return Parse(string(data), path), nil
}

// state holds the mutable cursor over a single parse.
type state struct {
	toks  []token.Token
	pos   int
	file  string
	diags []Diagnostic
}

func (s *state) tok() token.Token { return s.toks[s.pos] }

func (s *state) peekAt(n int) token.Token {
	idx := s.pos + n
	if idx >= len(s.toks) {
		return s.toks[len(s.toks)-1]
	}
	return s.toks[idx]
}

func (s *state) at(k token.Kind) bool { return s.tok().Kind == k }

func (s *state) atEOF() bool { return s.tok().Kind == token.KindEOF }

func (s *state) advance() token.Token {
	t := s.toks[s.pos]
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
	return t
}

func (s *state) leafHere(kind cst.Kind) *cst.Node {
	t := s.advance()
	return cst.Leaf(kind, t.Text, t.Span)
}

// expect consumes a token of kind k, or synthesizes a missing node and
// records a diagnostic without consuming, so the caller can keep trying
// to resynchronize on the same token.
func (s *state) expect(k token.Kind, leafKind cst.Kind, symbol string) *cst.Node {
	if s.at(k) {
		return s.leafHere(leafKind)
	}
	sp := s.tok().Span
	s.diags = append(s.diags, Diagnostic{
		Kind:    "missing:" + symbol,
		Span:    sp,
		Message: missingMessageFor(symbol),
	})
	return cst.MissingNode(symbol, sp)
}

func (s *state) unexpected(t token.Token) {
	s.diags = append(s.diags, Diagnostic{
		Kind:    "unexpected",
		Span:    t.Span,
		Message: fmt.Sprintf("unexpected token %q", t.Text),
	})
}

var builtinTypeKinds = map[token.Kind]bool{
	token.KindTypeInt: true, token.KindTypeFloat: true, token.KindTypeBool: true,
	token.KindTypeString: true, token.KindTypeMoney: true, token.KindTypePercent: true,
	token.KindTypeDate: true, token.KindTypeDuration: true, token.KindTypeVoid: true,
}

func (s *state) isBuiltinType() bool { return builtinTypeKinds[s.tok().Kind] }

// isTypeStart reports whether the cursor begins a TypeRef in a context
// (module top level, block statement) where a bare identifier could
// otherwise be the start of an expression. A named type is only assumed
// when the identifier is itself followed by another identifier (the
// variable name), which an expression statement never is.
func (s *state) isTypeStart() bool {
	if s.isBuiltinType() {
		return true
	}
	if s.at(token.KindIdent) && s.peekAt(1).Kind == token.KindIdent {
		return true
	}
	return false
}

// ---- module level -------------------------------------------------------

func (s *state) parseModule() *cst.Node {
	var children []*cst.Node
	for !s.atEOF() {
		before := s.pos
		switch {
		case s.at(token.KindImport):
			children = append(children, s.parseImportDecl())
		case s.at(token.KindStruct):
			children = append(children, s.parseStructDecl())
		case s.at(token.KindFunc):
			children = append(children, s.parseFunctionDecl())
		case s.at(token.KindStatute):
			children = append(children, s.parseStatuteDecl())
		case s.isTypeStart():
			children = append(children, s.parseVariableDecl())
		default:
			s.unexpected(s.tok())
		}
		if s.pos == before {
			s.advance()
		}
	}
	return cst.Interior(cst.KindModule, children...)
}

func (s *state) parseImportDecl() *cst.Node {
	children := []*cst.Node{s.leafHere(cst.KindIdentifierExpr)} // 'import'

	switch {
	case s.at(token.KindString):
		children = append(children, s.leafHere(cst.KindStringLit))
	case s.at(token.KindStar):
		children = append(children, s.leafHere(cst.KindIdentifierExpr))
		children = append(children, s.expectKeyword(token.KindFrom, "from"))
		children = append(children, s.expect(token.KindString, cst.KindStringLit, "string"))
	case s.at(token.KindLBrace):
		children = append(children, s.leafHere(cst.KindIdentifierExpr))
		for !s.at(token.KindRBrace) && !s.atEOF() {
			children = append(children, s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier"))
			if s.at(token.KindComma) {
				s.advance()
			} else {
				break
			}
		}
		children = append(children, s.expect(token.KindRBrace, cst.KindIdentifierExpr, "}"))
		children = append(children, s.expectKeyword(token.KindFrom, "from"))
		children = append(children, s.expect(token.KindString, cst.KindStringLit, "string"))
	default:
		s.unexpected(s.tok())
	}
	children = append(children, s.expect(token.KindSemi, cst.KindIdentifierExpr, ";"))
	return cst.Interior(cst.KindImportDecl, children...)
}

func (s *state) expectKeyword(k token.Kind, symbol string) *cst.Node {
	return s.expect(k, cst.KindIdentifierExpr, symbol)
}

func (s *state) parseStructDecl() *cst.Node {
	kw := s.leafHere(cst.KindIdentifierExpr)
	name := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
	lbrace := s.expect(token.KindLBrace, cst.KindIdentifierExpr, "{")
	children := []*cst.Node{kw, name, lbrace}
	for !s.at(token.KindRBrace) && !s.atEOF() {
		before := s.pos
		children = append(children, s.parseFieldDecl())
		if s.pos == before {
			s.advance()
		}
	}
	children = append(children, s.expect(token.KindRBrace, cst.KindIdentifierExpr, "}"))
	return cst.Interior(cst.KindStructDecl, children...)
}

func (s *state) parseFieldDecl() *cst.Node {
	typ := s.parseTypeRef()
	name := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
	semi := s.expect(token.KindSemi, cst.KindIdentifierExpr, ";")
	return cst.Interior(cst.KindFieldDecl, typ, name, semi)
}

func (s *state) parseFunctionDecl() *cst.Node {
	kw := s.leafHere(cst.KindIdentifierExpr)
	name := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
	lparen := s.expect(token.KindLParen, cst.KindIdentifierExpr, "(")
	children := []*cst.Node{kw, name, lparen}
	for !s.at(token.KindRParen) && !s.atEOF() {
		children = append(children, s.parseParamDecl())
		if s.at(token.KindComma) {
			s.advance()
		} else {
			break
		}
	}
	children = append(children, s.expect(token.KindRParen, cst.KindIdentifierExpr, ")"))
	if !s.at(token.KindLBrace) {
		children = append(children, s.parseTypeRef())
	}
	children = append(children, s.parseBlock())
	return cst.Interior(cst.KindFunctionDecl, children...)
}

func (s *state) parseParamDecl() *cst.Node {
	typ := s.parseTypeRef()
	name := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
	return cst.Interior(cst.KindParamDecl, typ, name)
}

func (s *state) parseTypeRef() *cst.Node {
	var base *cst.Node
	switch {
	case s.isBuiltinType():
		base = s.leafHere(cst.KindTypeRef)
	case s.at(token.KindIdent):
		base = s.leafHere(cst.KindTypeRef)
		if s.at(token.KindLt) {
			lt := s.leafHere(cst.KindTypeRef)
			args := []*cst.Node{base, lt}
			for !s.at(token.KindGt) && !s.atEOF() {
				args = append(args, s.parseTypeRef())
				if s.at(token.KindComma) {
					s.advance()
				} else {
					break
				}
			}
			args = append(args, s.expect(token.KindGt, cst.KindTypeRef, ">"))
			base = cst.Interior(cst.KindTypeRef, args...)
		}
	default:
		s.unexpected(s.tok())
		sp := s.tok().Span
		s.advance()
		base = cst.MissingNode("type", sp)
	}
	for {
		switch {
		case s.at(token.KindLBracket):
			lb := s.advance()
			rb := s.expect(token.KindRBracket, cst.KindTypeRef, "]")
			base = cst.Interior(cst.KindTypeRef, base, cst.Leaf(cst.KindTypeRef, "[]", lb.Span), rb)
		case s.at(token.KindQuestion):
			q := s.leafHere(cst.KindTypeRef)
			base = cst.Interior(cst.KindTypeRef, base, q)
		default:
			return base
		}
	}
}

// ---- statute declarations -------------------------------------------------

func (s *state) parseStatuteDecl() *cst.Node {
	kw := s.leafHere(cst.KindIdentifierExpr)
	section := s.expect(token.KindString, cst.KindStringLit, "string")
	children := []*cst.Node{kw, section}
	if s.at(token.KindString) {
		children = append(children, s.leafHere(cst.KindStringLit))
	}
	children = append(children, s.expect(token.KindLBrace, cst.KindIdentifierExpr, "{"))
	for !s.at(token.KindRBrace) && !s.atEOF() {
		before := s.pos
		switch {
		case s.at(token.KindDefine):
			children = append(children, s.parseDefineDecl())
		case s.at(token.KindActusReus), s.at(token.KindMensRea), s.at(token.KindCircumstance):
			children = append(children, s.parseElementDecl())
		case s.at(token.KindPenalty):
			children = append(children, s.parsePenaltyDecl())
		case s.at(token.KindIllustrate):
			children = append(children, s.parseIllustrationDecl())
		default:
			s.unexpected(s.tok())
		}
		if s.pos == before {
			s.advance()
		}
	}
	children = append(children, s.expect(token.KindRBrace, cst.KindIdentifierExpr, "}"))
	return cst.Interior(cst.KindStatuteDecl, children...)
}

func (s *state) parseDefineDecl() *cst.Node {
	kw := s.leafHere(cst.KindIdentifierExpr)
	name := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
	assign := s.expect(token.KindAssign, cst.KindIdentifierExpr, ":=")
	val := s.parseExpression()
	semi := s.expect(token.KindSemi, cst.KindIdentifierExpr, ";")
	return cst.Interior(cst.KindDefineDecl, kw, name, assign, val, semi)
}

func (s *state) parseElementDecl() *cst.Node {
	role := s.leafHere(cst.KindIdentifierExpr)
	name := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
	assign := s.expect(token.KindAssign, cst.KindIdentifierExpr, ":=")
	val := s.parseExpression()
	semi := s.expect(token.KindSemi, cst.KindIdentifierExpr, ";")
	return cst.Interior(cst.KindElementDecl, role, name, assign, val, semi)
}

func (s *state) parsePenaltyDecl() *cst.Node {
	kw := s.leafHere(cst.KindIdentifierExpr)
	children := []*cst.Node{kw, s.expect(token.KindLBrace, cst.KindIdentifierExpr, "{")}
	for !s.at(token.KindRBrace) && !s.atEOF() {
		before := s.pos
		name := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
		assign := s.expect(token.KindAssign, cst.KindIdentifierExpr, ":=")
		val := s.parseExpression()
		semi := s.expect(token.KindSemi, cst.KindIdentifierExpr, ";")
		children = append(children, cst.Interior(cst.KindPenaltyEntry, name, assign, val, semi))
		if s.pos == before {
			s.advance()
		}
	}
	children = append(children, s.expect(token.KindRBrace, cst.KindIdentifierExpr, "}"))
	return cst.Interior(cst.KindPenaltyDecl, children...)
}

func (s *state) parseIllustrationDecl() *cst.Node {
	kw := s.leafHere(cst.KindIdentifierExpr)
	text := s.expect(token.KindString, cst.KindStringLit, "string")
	semi := s.expect(token.KindSemi, cst.KindIdentifierExpr, ";")
	return cst.Interior(cst.KindIllustration, kw, text, semi)
}

// ---- statements ------------------------------------------------------------

func (s *state) parseBlock() *cst.Node {
	lbrace := s.expect(token.KindLBrace, cst.KindIdentifierExpr, "{")
	children := []*cst.Node{lbrace}
	for !s.at(token.KindRBrace) && !s.atEOF() {
		before := s.pos
		children = append(children, s.parseStatement())
		if s.pos == before {
			s.advance()
		}
	}
	children = append(children, s.expect(token.KindRBrace, cst.KindIdentifierExpr, "}"))
	return cst.Interior(cst.KindBlock, children...)
}

func (s *state) parseStatement() *cst.Node {
	switch {
	case s.isTypeStart():
		return s.parseVariableDecl()
	case s.at(token.KindReturn):
		kw := s.leafHere(cst.KindIdentifierExpr)
		children := []*cst.Node{kw}
		if !s.at(token.KindSemi) {
			children = append(children, s.parseExpression())
		}
		children = append(children, s.expect(token.KindSemi, cst.KindIdentifierExpr, ";"))
		return cst.Interior(cst.KindReturnStmt, children...)
	case s.at(token.KindPass):
		kw := s.leafHere(cst.KindIdentifierExpr)
		semi := s.expect(token.KindSemi, cst.KindIdentifierExpr, ";")
		return cst.Interior(cst.KindPassStmt, kw, semi)
	default:
		expr := s.parseExpression()
		if s.at(token.KindAssign) {
			assign := s.leafHere(cst.KindIdentifierExpr)
			rhs := s.parseExpression()
			semi := s.expect(token.KindSemi, cst.KindIdentifierExpr, ";")
			return cst.Interior(cst.KindAssignmentStmt, expr, assign, rhs, semi)
		}
		semi := s.expect(token.KindSemi, cst.KindIdentifierExpr, ";")
		return cst.Interior(cst.KindExpressionStmt, expr, semi)
	}
}

func (s *state) parseVariableDecl() *cst.Node {
	typ := s.parseTypeRef()
	name := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
	assign := s.expect(token.KindAssign, cst.KindIdentifierExpr, ":=")
	val := s.parseExpression()
	semi := s.expect(token.KindSemi, cst.KindIdentifierExpr, ";")
	return cst.Interior(cst.KindVariableDecl, typ, name, assign, val, semi)
}

// ---- expressions -----------------------------------------------------------

var binaryPrecedence = map[token.Kind]int{
	token.KindOr:        1,
	token.KindAnd:       2,
	token.KindEq:        3,
	token.KindNeq:       3,
	token.KindLt:        4,
	token.KindGt:        4,
	token.KindLe:        4,
	token.KindGe:        4,
	token.KindPlus:      5,
	token.KindMinus:     5,
	token.KindStar:      6,
	token.KindSlash:     6,
	token.KindPercentOp: 6,
}

func (s *state) parseExpression() *cst.Node {
	return s.parseBinary(1)
}

func (s *state) parseBinary(minPrec int) *cst.Node {
	left := s.parseUnary()
	for {
		prec, ok := binaryPrecedence[s.tok().Kind]
		if !ok || prec < minPrec {
			return left
		}
		op := s.leafHere(cst.KindIdentifierExpr)
		right := s.parseBinary(prec + 1)
		left = cst.Interior(cst.KindBinaryExpr, left, op, right)
	}
}

func (s *state) parseUnary() *cst.Node {
	if s.at(token.KindNot) || s.at(token.KindMinus) {
		op := s.leafHere(cst.KindIdentifierExpr)
		operand := s.parseUnary()
		return cst.Interior(cst.KindUnaryExpr, op, operand)
	}
	return s.parsePostfix(s.parsePrimary())
}

func (s *state) parsePostfix(node *cst.Node) *cst.Node {
	for {
		switch {
		case s.at(token.KindDot):
			dot := s.leafHere(cst.KindIdentifierExpr)
			field := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
			node = cst.Interior(cst.KindFieldAccess, node, dot, field)
		case s.at(token.KindLBracket):
			s.advance()
			idx := s.parseExpression()
			rb := s.expect(token.KindRBracket, cst.KindIdentifierExpr, "]")
			node = cst.Interior(cst.KindIndexAccess, node, idx, rb)
		case s.at(token.KindLParen):
			lp := s.leafHere(cst.KindIdentifierExpr)
			children := []*cst.Node{node, lp}
			for !s.at(token.KindRParen) && !s.atEOF() {
				children = append(children, s.parseExpression())
				if s.at(token.KindComma) {
					s.advance()
				} else {
					break
				}
			}
			children = append(children, s.expect(token.KindRParen, cst.KindIdentifierExpr, ")"))
			node = cst.Interior(cst.KindCallExpr, children...)
		default:
			return node
		}
	}
}

var durationUnits = map[string]bool{
	"year": true, "years": true, "month": true, "months": true,
	"day": true, "days": true, "hour": true, "hours": true,
	"minute": true, "minutes": true, "second": true, "seconds": true,
}

func (s *state) parsePrimary() *cst.Node {
	switch {
	case s.at(token.KindLParen):
		s.advance()
		inner := s.parseExpression()
		s.expect(token.KindRParen, cst.KindIdentifierExpr, ")")
		return inner
	case s.at(token.KindMatch):
		return s.parseMatchExpr()
	case s.at(token.KindPass):
		return s.leafHere(cst.KindPassExpr)
	case s.at(token.KindInt):
		if s.peekAt(1).Kind == token.KindIdent && durationUnits[s.peekAt(1).Text] {
			return s.parseDurationLiteral()
		}
		return s.leafHere(cst.KindIntLit)
	case s.at(token.KindFloat):
		return s.leafHere(cst.KindFloatLit)
	case s.at(token.KindBool):
		return s.leafHere(cst.KindBoolLit)
	case s.at(token.KindString):
		return s.leafHere(cst.KindStringLit)
	case s.at(token.KindMoney):
		return s.leafHere(cst.KindMoneyLit)
	case s.at(token.KindPercent):
		return s.leafHere(cst.KindPercentLit)
	case s.at(token.KindDate):
		return s.leafHere(cst.KindDateLit)
	case s.at(token.KindIdent):
		name := s.leafHere(cst.KindIdentifierExpr)
		if s.at(token.KindLBrace) && s.looksLikeStructLiteral() {
			return s.parseStructLiteralTail(name)
		}
		return name
	default:
		s.unexpected(s.tok())
		sp := s.tok().Span
		s.advance()
		return cst.MissingNode("expression", sp)
	}
}

// looksLikeStructLiteral disambiguates `Name { ... }` struct literals from
// a bare identifier immediately followed by an unrelated block, such as a
// match scrutinee followed by its arm list. A struct literal's brace is
// either empty or opens with `ident :`.
func (s *state) looksLikeStructLiteral() bool {
	if s.peekAt(1).Kind == token.KindRBrace {
		return true
	}
	return s.peekAt(1).Kind == token.KindIdent && s.peekAt(2).Kind == token.KindColon
}

func (s *state) parseStructLiteralTail(name *cst.Node) *cst.Node {
	lbrace := s.leafHere(cst.KindIdentifierExpr)
	children := []*cst.Node{name, lbrace}
	for !s.at(token.KindRBrace) && !s.atEOF() {
		fname := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
		colon := s.expect(token.KindColon, cst.KindIdentifierExpr, ":")
		fval := s.parseExpression()
		children = append(children, cst.Interior(cst.KindStructLitField, fname, colon, fval))
		if s.at(token.KindComma) {
			s.advance()
		} else {
			break
		}
	}
	children = append(children, s.expect(token.KindRBrace, cst.KindIdentifierExpr, "}"))
	return cst.Interior(cst.KindStructLiteral, children...)
}

func (s *state) parseDurationLiteral() *cst.Node {
	var parts []*cst.Node
	for {
		num := s.leafHere(cst.KindIntLit)
		unit := s.leafHere(cst.KindIdentifierExpr)
		parts = append(parts, num, unit)
		if s.at(token.KindComma) && s.peekAt(1).Kind == token.KindInt && s.peekAt(2).Kind == token.KindIdent && durationUnits[s.peekAt(2).Text] {
			s.advance()
			continue
		}
		break
	}
	return cst.Interior(cst.KindDurationLit, parts...)
}

// ---- match / patterns -------------------------------------------------------

func (s *state) parseMatchExpr() *cst.Node {
	kw := s.leafHere(cst.KindIdentifierExpr)
	children := []*cst.Node{kw}
	if !s.at(token.KindLBrace) {
		children = append(children, s.parseExpression())
	}
	children = append(children, s.expect(token.KindLBrace, cst.KindIdentifierExpr, "{"))
	for s.at(token.KindCase) {
		children = append(children, s.parseMatchArm())
	}
	children = append(children, s.expect(token.KindRBrace, cst.KindIdentifierExpr, "}"))
	return cst.Interior(cst.KindMatchExpr, children...)
}

func (s *state) parseMatchArm() *cst.Node {
	kw := s.leafHere(cst.KindIdentifierExpr)
	pat := s.parsePattern()
	children := []*cst.Node{kw, pat}
	if s.at(token.KindQuestion) {
		s.advance()
		children = append(children, s.parseExpression())
	}
	children = append(children, s.expect(token.KindArrow, cst.KindIdentifierExpr, "=>"))
	children = append(children, s.parseExpression())
	children = append(children, s.expect(token.KindSemi, cst.KindIdentifierExpr, ";"))
	return cst.Interior(cst.KindMatchArm, children...)
}

var patternLiteralKinds = map[token.Kind]bool{
	token.KindInt: true, token.KindFloat: true, token.KindBool: true,
	token.KindString: true, token.KindMoney: true, token.KindPercent: true,
	token.KindDate: true,
}

// patternLiteralCSTKind preserves which literal variant a pattern token
// was so the AST builder can interpret its text without re-guessing from
// the raw string (a quoted string literal could otherwise be
// indistinguishable from an int literal's text).
var patternLiteralCSTKind = map[token.Kind]cst.Kind{
	token.KindInt:     cst.KindIntLit,
	token.KindFloat:   cst.KindFloatLit,
	token.KindBool:    cst.KindBoolLit,
	token.KindString:  cst.KindStringLit,
	token.KindMoney:   cst.KindMoneyLit,
	token.KindPercent: cst.KindPercentLit,
	token.KindDate:    cst.KindDateLit,
}

func (s *state) parsePattern() *cst.Node {
	switch {
	case s.at(token.KindWildcard):
		return s.leafHere(cst.KindPatternWildcard)
	case patternLiteralKinds[s.tok().Kind]:
		return s.leafHere(patternLiteralCSTKind[s.tok().Kind])
	case s.at(token.KindIdent):
		name := s.advance()
		if s.at(token.KindLParen) {
			lparen := s.leafHere(cst.KindIdentifierExpr)
			nameLeaf := cst.Leaf(cst.KindIdentifierExpr, name.Text, name.Span)
			children := []*cst.Node{nameLeaf, lparen}
			for !s.at(token.KindRParen) && !s.atEOF() {
				fname := s.expect(token.KindIdent, cst.KindIdentifierExpr, "identifier")
				colon := s.expect(token.KindColon, cst.KindIdentifierExpr, ":")
				fpat := s.parsePattern()
				children = append(children, cst.Interior(cst.KindFieldPattern, fname, colon, fpat))
				if s.at(token.KindComma) {
					s.advance()
				} else {
					break
				}
			}
			children = append(children, s.expect(token.KindRParen, cst.KindIdentifierExpr, ")"))
			return cst.Interior(cst.KindPatternStruct, children...)
		}
		return cst.Leaf(cst.KindPatternBinding, name.Text, name.Span)
	default:
		s.unexpected(s.tok())
		sp := s.tok().Span
		s.advance()
		return cst.MissingNode("pattern", sp)
	}
}
